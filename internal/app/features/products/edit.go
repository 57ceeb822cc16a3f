// internal/app/features/products/edit.go
package products

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/inputval"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func editURL(id string) string { return listURL + "/" + id + "/edit" }

// ServeEdit handles GET /dashboard/products/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get product")
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogBackend(w, r, "get product", err, "Failed to get product status", listURL)
		return
	}

	templates.Render(w, r, "product_edit", formData{
		BaseVM:              viewdata.NewBaseVM(r, "Edit "+p.ItemName, listURL+"/"+id),
		ID:                  id,
		ItemName:            p.ItemName,
		Description:         p.Description,
		Category:            p.Category,
		Condition:           p.Condition,
		Daily:               p.DailyPricing.StringFixed(2),
		Weekly:              p.WeeklyPricing.StringFixed(2),
		Monthly:             p.MonthlyPricing.StringFixed(2),
		Deposit:             p.SecurityDeposit.StringFixed(2),
		Specifications:      p.Specifications,
		SafetyTips:          p.SafetyTips,
		SpecialInstructions: p.SpecialInstructions,
		PickupLocation:      p.PickupLocation,
		IsAvailable:         p.IsAvailable,
		Categories:          models.ProductCategories,
		Conditions:          models.ProductConditions,
	})
}

// HandleEdit handles POST /dashboard/products/{id}/edit.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", editURL(id))
		return
	}

	in := productInput{
		ItemName:            normalize.Name(r.FormValue("itemName")),
		Description:         formutil.Value(r, "description"),
		Category:            formutil.Value(r, "category"),
		Condition:           formutil.Value(r, "condition"),
		Specifications:      formutil.Value(r, "specifications"),
		SafetyTips:          formutil.Value(r, "safetyTips"),
		SpecialInstructions: formutil.Value(r, "specialInstructions"),
		PickupLocation:      formutil.Value(r, "pickupLocation"),
	}
	available := formutil.Checkbox(r, "isAvailable")

	data := formData{
		BaseVM:              viewdata.NewBaseVM(r, "Edit "+in.ItemName, listURL+"/"+id),
		ID:                  id,
		ItemName:            in.ItemName,
		Description:         in.Description,
		Category:            in.Category,
		Condition:           in.Condition,
		Daily:               formutil.Value(r, "dailyPricing"),
		Weekly:              formutil.Value(r, "weeklyPricing"),
		Monthly:             formutil.Value(r, "monthlyPricing"),
		Deposit:             formutil.Value(r, "securityDeposit"),
		Specifications:      in.Specifications,
		SafetyTips:          in.SafetyTips,
		SpecialInstructions: in.SpecialInstructions,
		PickupLocation:      in.PickupLocation,
		IsAvailable:         available,
		Categories:          models.ProductCategories,
		Conditions:          models.ProductConditions,
	}
	reRender := func(status int, msg string) {
		data.SetError(msg)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		templates.Render(w, r, "product_edit", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		reRender(http.StatusBadRequest, res.First())
		return
	}

	prices := map[string]decimal.Decimal{}
	for _, f := range []struct{ field, label string }{
		{"dailyPricing", "Daily price"},
		{"weeklyPricing", "Weekly price"},
		{"monthlyPricing", "Monthly price"},
		{"securityDeposit", "Security deposit"},
	} {
		d, ok := formutil.Money(r, f.field)
		if !ok {
			reRender(http.StatusBadRequest, f.label+" must be a non-negative amount.")
			return
		}
		prices[f.field] = d
	}
	if prices["dailyPricing"].IsZero() {
		reRender(http.StatusBadRequest, "Daily price is required.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update product")
	defer cancel()

	_, err := h.Products.Update(ctx, id, models.ProductUpdate{
		ItemName:            in.ItemName,
		Description:         in.Description,
		Category:            in.Category,
		Condition:           in.Condition,
		DailyPricing:        prices["dailyPricing"],
		WeeklyPricing:       prices["weeklyPricing"],
		MonthlyPricing:      prices["monthlyPricing"],
		SecurityDeposit:     prices["securityDeposit"],
		Specifications:      in.Specifications,
		SafetyTips:          in.SafetyTips,
		SpecialInstructions: in.SpecialInstructions,
		PickupLocation:      in.PickupLocation,
		IsAvailable:         available,
	})
	if err != nil {
		if h.ErrLog.SessionExpired(w, r, "update product", err) {
			return
		}
		h.Log.Warn("update product failed", zap.Error(err), zap.String("product_id", id))
		reRender(backend.StatusOf(err), backend.MessageOf(err, "Failed to update product"))
		return
	}

	h.AuditLog.ProductUpdated(r.Context(), r, id, in.ItemName)
	h.Flash.Success(w, r, "Product updated successfully")
	http.Redirect(w, r, listURL+"/"+id, http.StatusSeeOther)
}
