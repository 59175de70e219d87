package listing

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapDocuments flattens raw Mongo documents into the response schema.
// Two shapes exist in the collection and both are mapped defensively:
// an envelope with nested "fields"/"taxonomies" subdocuments, and a flat
// shape whose numerics may arrive boxed ({"$numberInt": "..."} style).
// Mapping never fails per-document; absent fields get zero values and
// tag/amenity slices are always non-nil.
func MapDocuments(raw []bson.M) []Document {
	out := make([]Document, 0, len(raw))
	for _, doc := range raw {
		out = append(out, mapDocument(doc))
	}
	return out
}

func mapDocument(doc bson.M) Document {
	fields, _ := asMap(doc["fields"])
	taxonomies, _ := asMap(doc["taxonomies"])

	pick := func(keys ...string) string {
		for _, k := range keys {
			if fields != nil {
				if v := asString(fields[k]); v != "" {
					return v
				}
			}
			if v := asString(doc[k]); v != "" {
				return v
			}
		}
		return ""
	}
	pickNum := func(keys ...string) (float64, bool) {
		for _, k := range keys {
			if fields != nil {
				if v, ok := asFloat(fields[k]); ok {
					return v, true
				}
			}
			if v, ok := asFloat(doc[k]); ok {
				return v, true
			}
		}
		return 0, false
	}
	pickList := func(keys ...string) []string {
		for _, k := range keys {
			if taxonomies != nil {
				if v := asStringSlice(taxonomies[k]); len(v) > 0 {
					return v
				}
			}
			if fields != nil {
				if v := asStringSlice(fields[k]); len(v) > 0 {
					return v
				}
			}
			if v := asStringSlice(doc[k]); len(v) > 0 {
				return v
			}
		}
		return []string{}
	}
	// taxonomy arrays carry a single term in practice; flat shapes use a
	// plain string field instead
	pickTerm := func(key string, flat ...string) string {
		if taxonomies != nil {
			if v := asStringSlice(taxonomies[key]); len(v) > 0 {
				return v[0]
			}
		}
		return pick(flat...)
	}

	price, _ := pickNum("price", "list_price", "price_per_night")
	lat, _ := pickNum("latitude", "lat")
	lng, _ := pickNum("longitude", "lng", "lon")

	return Document{
		ID:         documentID(doc),
		Title:      pick("title", "name"),
		Address:    pick("address", "full_address"),
		Location:   pickTerm("location", "location", "city"),
		Category:   pickTerm("category", "category", "type"),
		Status:     pick("status"),
		Price:      price,
		Coords:     [2]float64{lng, lat},
		Tags:       pickList("tags"),
		Amenities:  pickList("amenities"),
		ImageURL:   pick("image", "image_url", "imageUrl", "photo"),
		ListingURL: pick("url", "listing_url", "listingUrl", "link"),
	}
}

func documentID(doc bson.M) string {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return asString(v)
	}
}

// asMap tolerates both bson.M (driver decode) and map[string]any (JSON).
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// asFloat unwraps every numeric encoding seen in the collection: native
// bson numerics, Decimal128, numeric strings, and extended-JSON boxed
// wrappers stored as literal subdocuments.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return f, true
		}
		return 0, false
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
		return 0, false
	}
	if m, ok := asMap(v); ok {
		for _, k := range []string{"$numberInt", "$numberLong", "$numberDouble", "$numberDecimal"} {
			if inner, present := m[k]; present {
				return asFloat(inner)
			}
		}
	}
	return 0, false
}

func asStringSlice(v any) []string {
	var items []any
	switch a := v.(type) {
	case bson.A:
		items = a
	case []any:
		items = a
	case []string:
		return a
	case string:
		if a == "" {
			return nil
		}
		// some imports store a comma-joined string instead of an array
		parts := strings.Split(a, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := asString(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}
