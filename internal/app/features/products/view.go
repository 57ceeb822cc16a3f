// internal/app/features/products/view.go
package products

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /dashboard/products/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get product")
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogBackend(w, r, "get product", err, "Failed to get product status", listURL)
		return
	}

	templates.Render(w, r, "product_view", buildView(viewdata.NewBaseVM(r, p.ItemName, navigation.SafeBackURL(r, navigation.ProductsBackURL)), p, authz.CanManageAdmins(r)))
}

func buildView(base viewdata.BaseVM, p models.Product, canDelete bool) viewData {
	vd := viewData{
		BaseVM:      base,
		ID:          p.ID,
		Name:        p.ItemName,
		Description: p.Description,
		Cover:       p.Cover(),
		Photos:      p.Photos,
		Available:   p.IsAvailable,
		Lent:        p.IsLent,
		CanDelete:   canDelete,
		Pricing: []detailField{
			{"Daily", format.Money(p.DailyPricing)},
			{"Weekly", format.Money(p.WeeklyPricing)},
			{"Monthly", format.Money(p.MonthlyPricing)},
			{"Security deposit", format.Money(p.SecurityDeposit)},
		},
	}

	for _, f := range []detailField{
		{"Category", p.Category},
		{"Condition", p.Condition},
		{"Available from", format.DatePtr(p.LendingFrom)},
		{"Available until", format.DatePtr(p.LendingTo)},
		{"Brands", p.Brands},
		{"Dimensions", p.Dimensions},
		{"Specifications", p.Specifications},
		{"Usage", p.Usage},
		{"Safety tips", p.SafetyTips},
		{"Special instructions", p.SpecialInstructions},
		{"Pickup location", p.PickupLocation},
		{"Listed", format.Date(p.CreatedAt)},
		{"Last updated", format.Date(p.UpdatedAt)},
	} {
		if f.Value != "" {
			vd.Details = append(vd.Details, f)
		}
	}

	if o := p.Owner; o != nil {
		for _, f := range []detailField{
			{"Name", o.Name},
			{"Email", o.Email},
			{"Phone", o.Phone},
			{"Address", o.Address},
		} {
			if f.Value != "" {
				vd.Owner = append(vd.Owner, f)
			}
		}
	}
	return vd
}
