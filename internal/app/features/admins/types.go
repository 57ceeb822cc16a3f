// internal/app/features/admins/types.go
package admins

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
)

type adminRow struct {
	ID      string
	Name    string
	Email   string
	Role    string
	Status  string
	Country string
	Created string
	IsSelf  bool
}

type listData struct {
	viewdata.BaseVM

	Query    string
	Role     string
	Status   string
	Roles    []string
	Statuses []string

	Rows  []adminRow
	Pager paging.Pager
}

type formData struct {
	viewdata.BaseVM
	formutil.Base

	FirstName string
	LastName  string
	Email     string
	Role      string
	Country   string
	Roles     []string
}

// createAdminInput defines validation rules for the new admin form.
type createAdminInput struct {
	FirstName string `validate:"required,max=100" label:"First name"`
	LastName  string `validate:"required,max=100" label:"Last name"`
	Email     string `validate:"required,email" label:"Email"`
	Role      string `validate:"required,adminrole" label:"Role"`
	Password  string `validate:"required,min=8,max=128" label:"Password"`
	Country   string `validate:"required,max=100" label:"Country"`
}
