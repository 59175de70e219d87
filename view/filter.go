package view

import "strings"

// Filter holds the current search and selector controls. The zero value
// matches everything.
type Filter struct {
	Search   string
	Category string
	Tag      string
	Status   string
	MinPrice float64
	MaxPrice float64 // 0 means unbounded
}

// Apply projects the records matching f. It is a pure synchronous scan:
// applying the same filter twice yields the same subset.
func (f Filter) Apply(in []Record) []Record {
	out := make([]Record, 0, len(in))
	for _, r := range in {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) Match(r Record) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hay := strings.ToLower(r.Name + " " + r.Location + " " + r.Address)
		if !strings.Contains(hay, q) {
			return false
		}
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Tag != "" && !contains(r.Tags, f.Tag) {
		return false
	}
	if f.MinPrice > 0 && r.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && r.Price > f.MaxPrice {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
