package view

import (
	"strconv"
	"strings"
)

// Record is the flat typed view-model. It is rebuilt wholesale on every
// fetch and holds no identity beyond the server-assigned id.
type Record struct {
	ID         string
	Name       string
	Address    string
	Location   string
	Category   string
	Status     string
	Price      float64
	Tags       []string
	Amenities  []string
	ImageURL   string
	ListingURL string
}

// NewRecord normalizes one raw document into a Record, substituting a
// default for every absent optional field. It never fails: unknown or
// malformed values degrade to zero values.
func NewRecord(doc map[string]any) Record {
	return Record{
		ID:         str(doc, "id", "_id"),
		Name:       str(doc, "title", "name"),
		Address:    str(doc, "address"),
		Location:   str(doc, "location", "city"),
		Category:   str(doc, "category", "type"),
		Status:     str(doc, "status"),
		Price:      num(doc, "price"),
		Tags:       list(doc, "tags"),
		Amenities:  list(doc, "amenities"),
		ImageURL:   str(doc, "imageUrl", "image"),
		ListingURL: str(doc, "listingUrl", "url"),
	}
}

func str(doc map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := doc[k].(string); ok && s != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func num(doc map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if f, ok := unbox(doc[k]); ok {
			return f
		}
	}
	return 0
}

// unbox accepts plain JSON numbers, numeric strings, and boxed wrapper
// objects ({"$numberInt": "450000"} and friends).
func unbox(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	case map[string]any:
		for _, k := range []string{"$numberInt", "$numberLong", "$numberDouble", "$numberDecimal"} {
			if inner, ok := n[k]; ok {
				return unbox(inner)
			}
		}
	}
	return 0, false
}

func list(doc map[string]any, key string) []string {
	items, ok := doc[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
