package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_Defaults(t *testing.T) {
	r := NewRecord(map[string]any{})
	assert.Empty(t, r.Name)
	assert.Zero(t, r.Price)
	assert.NotNil(t, r.Tags)
	assert.Empty(t, r.Tags)
	assert.NotNil(t, r.Amenities)
	assert.Empty(t, r.Amenities)
}

func TestNewRecord_PlainFields(t *testing.T) {
	r := NewRecord(map[string]any{
		"id":        "a1",
		"title":     "Sunny Loft",
		"address":   "12 Main St",
		"location":  "Austin",
		"category":  "apartment",
		"status":    "for_sale",
		"price":     float64(450000),
		"tags":      []any{"downtown"},
		"amenities": []any{"pool", "gym"},
		"imageUrl":  "https://cdn.example.com/loft.jpg",
	})
	assert.Equal(t, "a1", r.ID)
	assert.Equal(t, "Sunny Loft", r.Name)
	assert.Equal(t, float64(450000), r.Price)
	assert.Equal(t, []string{"pool", "gym"}, r.Amenities)
}

func TestNewRecord_BoxedNumerics(t *testing.T) {
	r := NewRecord(map[string]any{
		"name":  "Boxed",
		"price": map[string]any{"$numberInt": "125000"},
	})
	assert.Equal(t, "Boxed", r.Name)
	assert.Equal(t, float64(125000), r.Price)
}

// Every document the server can emit must map into a Record without
// error, whatever mix of shapes the collection held.
func TestNewRecord_RoundTripsServerJSON(t *testing.T) {
	payload := `{"documents":[
		{"id":"1","title":"A","price":100,"amenities":["wifi"]},
		{"id":"2","name":"B","price":{"$numberDouble":"99.5"}},
		{"id":"3"},
		{"id":"4","tags":null,"price":"750"}
	]}`
	var body struct {
		Documents []map[string]any `json:"documents"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &body))

	for _, doc := range body.Documents {
		r := NewRecord(doc)
		assert.NotNil(t, r.Amenities)
		assert.NotNil(t, r.Tags)
	}
	assert.Equal(t, float64(99.5), NewRecord(body.Documents[1]).Price)
	assert.Equal(t, float64(750), NewRecord(body.Documents[3]).Price)
}
