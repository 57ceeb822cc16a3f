package inputval

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// IsValidEmail reports whether s is a bare addr-spec (no display name)
// with a well-formed local part and domain.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..") {
			return false
		}
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidMoney reports whether s parses as a non-negative decimal amount.
func IsValidMoney(s string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil && !d.IsNegative()
}

// OneOf reports whether s equals one of allowed (exact match).
func OneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func oneOfRule(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return OneOf(fl.Field().String(), allowed)
	}
}

func registerRules(v *validator.Validate) {
	// email: replace the library rule so forms and tests agree on one definition
	_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return IsValidHTTPURL(fl.Field().String())
	})
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		return IsValidMoney(fl.Field().String())
	})
	_ = v.RegisterValidation("adminrole", oneOfRule(models.AdminRoles))
	_ = v.RegisterValidation("adminstatus", oneOfRule(models.AdminStatuses))
	_ = v.RegisterValidation("orderstatus", oneOfRule(models.OrderStatuses))
	_ = v.RegisterValidation("plan", oneOfRule(models.Plans))
	_ = v.RegisterValidation("productcategory", oneOfRule(models.ProductCategories))
	_ = v.RegisterValidation("productcondition", oneOfRule(models.ProductConditions))
	_ = v.RegisterValidation("blogstatus", oneOfRule([]string{models.BlogDraft, models.BlogPublished}))
}
