// internal/app/system/backend/page.go
package backend

import (
	"bytes"
	"encoding/json"
)

// listKeys are the envelope fields list endpoints put their rows under.
var listKeys = []string{"data", "items", "results", "users", "orders", "products", "admins", "blogs", "contacts", "memberships", "subscriptions"}

// Page is one page of a backend list. It decodes either a bare JSON array
// or an envelope such as {"data":[...],"total":42,"page":1,"totalPages":5}.
// Envelopes may nest one level ({"data":{"users":[...],"total":3}}).
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	TotalPages int
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Page[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '[' {
		if err := json.Unmarshal(b, &p.Items); err != nil {
			return err
		}
		p.Total = len(p.Items)
		return nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	for _, key := range listKeys {
		raw, ok := env[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			continue
		}
		switch raw[0] {
		case '[':
			if err := json.Unmarshal(raw, &p.Items); err != nil {
				return err
			}
		case '{':
			var inner Page[T]
			if err := json.Unmarshal(raw, &inner); err != nil {
				return err
			}
			p.Items = inner.Items
			p.Total, p.Page, p.TotalPages = inner.Total, inner.Page, inner.TotalPages
		default:
			continue
		}
		break
	}

	p.Total = firstInt(env, p.Total, "total", "totalCount", "count")
	p.Page = firstInt(env, p.Page, "page", "currentPage")
	p.TotalPages = firstInt(env, p.TotalPages, "totalPages", "pages")
	if pg, ok := env["pagination"]; ok {
		var nested map[string]json.RawMessage
		if json.Unmarshal(pg, &nested) == nil {
			p.Total = firstInt(nested, p.Total, "total", "totalCount")
			p.Page = firstInt(nested, p.Page, "page", "currentPage")
			p.TotalPages = firstInt(nested, p.TotalPages, "totalPages", "pages")
		}
	}
	if p.Total == 0 {
		p.Total = len(p.Items)
	}
	return nil
}

// firstInt returns the first key in m that decodes as an integer, else def.
func firstInt(m map[string]json.RawMessage, def int, keys ...string) int {
	for _, k := range keys {
		raw, ok := m[k]
		if !ok {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			var s string
			if json.Unmarshal(raw, &s) != nil {
				continue
			}
			n = json.Number(s)
		}
		if v, err := n.Int64(); err == nil {
			return int(v)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	}
	return def
}

// One decodes a single record that the backend may wrap as {"data": {...}}.
type One[T any] struct {
	Value T
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *One[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(b, &env); err != nil {
			return err
		}
		if raw, ok := env["data"]; ok {
			raw = bytes.TrimSpace(raw)
			if len(raw) > 0 && raw[0] == '{' {
				return json.Unmarshal(raw, &o.Value)
			}
		}
	}
	return json.Unmarshal(b, &o.Value)
}
