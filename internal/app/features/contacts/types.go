// internal/app/features/contacts/types.go
package contacts

import (
	"html/template"

	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/htmlsanitize"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

type contactRow struct {
	ID       string
	Name     string
	Email    string
	Role     string
	Excerpt  string
	Received string
	Replied  bool
}

type listData struct {
	viewdata.BaseVM

	Query     string
	Filter    string
	Unreplied int

	CanDelete bool
	Rows      []contactRow
	Pager     paging.Pager
}

type viewData struct {
	viewdata.BaseVM
	formutil.Base

	ID         string
	Name       string
	Email      string
	Phone      string
	SenderRole string
	Received   string
	Message    template.HTML
	Replied    bool
	RepliedBy  string
	RepliedOn  string
	Reply      template.HTML
	Draft      string
	CanDelete  bool
}

func toRow(c models.Contact) contactRow {
	return contactRow{
		ID:       c.ID,
		Name:     c.FullName(),
		Email:    c.Email,
		Role:     c.Role,
		Excerpt:  htmlsanitize.Excerpt(c.Message, 80),
		Received: format.Date(c.CreatedAt),
		Replied:  c.Replied,
	}
}

func buildView(base viewdata.BaseVM, c models.Contact, canDelete bool) viewData {
	return viewData{
		BaseVM:     base,
		ID:         c.ID,
		Name:       c.FullName(),
		Email:      c.Email,
		Phone:      c.PhoneNumber,
		SenderRole: c.Role,
		Received:   format.DateTime(c.CreatedAt),
		Message:    htmlsanitize.PrepareForDisplay(c.Message),
		Replied:    c.Replied,
		RepliedBy:  c.RepliedBy,
		RepliedOn:  format.DatePtr(c.ReplyOn),
		Reply:      htmlsanitize.PrepareForDisplay(c.ReplyMessage),
		CanDelete:  canDelete,
	}
}
