// internal/app/features/orders/types.go
package orders

import (
	"html/template"
	"strconv"

	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// orderRow is an order with its money and dates ready for display.
type orderRow struct {
	ID        string
	Product   string
	Borrower  string
	Lender    string
	Ordered   string
	Window    string
	Days      string
	Total     string
	DailyRate string
	ListPrice string
	Payment   string
	Status    string
	Statuses  []string
	CSRFField template.HTML // status form in list rows and the HTMX cell
}

func toRow(o models.Order) orderRow {
	row := orderRow{
		ID:        o.OrderID,
		Product:   o.Product.ItemName,
		Borrower:  o.Borrower.Name,
		Lender:    o.Lender.Name,
		Ordered:   format.Date(o.OrderDate),
		Window:    format.Date(o.LendingFrom) + " – " + format.Date(o.LendingTo),
		Total:     format.Money(o.TotalPrice),
		ListPrice: format.Money(o.Product.DailyPricing),
		Payment:   o.PaymentMethod,
		Status:    o.Status,
		Statuses:  models.OrderStatuses,
	}
	if days := o.RentalDays(); days > 0 {
		row.Days = strconv.Itoa(days)
		row.DailyRate = format.Money(o.EffectiveDailyRate())
	} else {
		row.Days = "-"
		row.DailyRate = "-"
	}
	return row
}

type listData struct {
	viewdata.BaseVM

	Query    string
	Status   string
	Statuses []string

	Rows  []orderRow
	Pager paging.Pager
}

type viewData struct {
	viewdata.BaseVM
	Order orderRow

	Description    string
	PickupLocation string
	Photos         []string
	BorrowerParty  models.Party
	LenderParty    models.Party
}
