// internal/app/features/orders/view.go
package orders

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
)

// ServeView handles GET /dashboard/orders/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get order")
	defer cancel()

	o, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogBackend(w, r, "get order", err, "Failed to get Order status", listURL)
		return
	}

	row := toRow(o)
	row.CSRFField = csrf.TemplateField(r)
	templates.Render(w, r, "order_view", viewData{
		BaseVM:         viewdata.NewBaseVM(r, "Order "+o.OrderID, navigation.SafeBackURL(r, navigation.OrdersBackURL)),
		Order:          row,
		Description:    o.Product.Description,
		PickupLocation: o.Product.PickupLocation,
		Photos:         o.Product.Photos,
		BorrowerParty:  o.Borrower,
		LenderParty:    o.Lender,
	})
}
