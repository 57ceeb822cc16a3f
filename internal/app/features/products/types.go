// internal/app/features/products/types.go
package products

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
)

type productRow struct {
	ID        string
	Name      string
	Category  string
	Condition string
	Daily     string
	Cover     string
	Available bool
	Lent      bool
	Owner     string
}

type listData struct {
	viewdata.BaseVM

	Query        string
	Category     string
	Availability string
	Categories   []string

	Rows  []productRow
	Pager paging.Pager
}

type detailField struct {
	Label string
	Value string
}

type viewData struct {
	viewdata.BaseVM

	ID          string
	Name        string
	Description string
	Cover       string
	Photos      []string
	Available   bool
	Lent        bool
	Pricing     []detailField
	Details     []detailField
	Owner       []detailField
	CanDelete   bool
}

type formData struct {
	viewdata.BaseVM
	formutil.Base

	ID                  string
	ItemName            string
	Description         string
	Category            string
	Condition           string
	Daily               string
	Weekly              string
	Monthly             string
	Deposit             string
	Specifications      string
	SafetyTips          string
	SpecialInstructions string
	PickupLocation      string
	IsAvailable         bool

	Categories []string
	Conditions []string
}

// productInput defines validation rules for the edit form's text fields.
// Prices are parsed separately with formutil.Money.
type productInput struct {
	ItemName            string `validate:"required,max=200" label:"Item name"`
	Description         string `validate:"max=5000" label:"Description"`
	Category            string `validate:"required,productcategory" label:"Category"`
	Condition           string `validate:"required,productcondition" label:"Condition"`
	Specifications      string `validate:"max=2000" label:"Specifications"`
	SafetyTips          string `validate:"max=2000" label:"Safety tips"`
	SpecialInstructions string `validate:"max=2000" label:"Special instructions"`
	PickupLocation      string `validate:"max=300" label:"Pickup location"`
}
