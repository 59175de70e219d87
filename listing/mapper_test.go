package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMapDocuments_EnvelopeShape(t *testing.T) {
	oid := primitive.NewObjectID()
	docs := []bson.M{
		{
			"_id": oid,
			"fields": bson.M{
				"title":     "Sunny Loft",
				"address":   "12 Main St",
				"price":     int32(450000),
				"latitude":  30.25,
				"longitude": -97.75,
				"amenities": bson.A{"pool", "gym"},
				"image":     "https://cdn.example.com/loft.jpg",
				"url":       "https://example.com/loft",
			},
			"taxonomies": bson.M{
				"category": bson.A{"apartment"},
				"location": bson.A{"Austin"},
				"tags":     bson.A{"downtown", "new"},
			},
		},
	}

	out := MapDocuments(docs)
	require.Len(t, out, 1)

	d := out[0]
	assert.Equal(t, oid.Hex(), d.ID)
	assert.Equal(t, "Sunny Loft", d.Title)
	assert.Equal(t, "12 Main St", d.Address)
	assert.Equal(t, "Austin", d.Location)
	assert.Equal(t, "apartment", d.Category)
	assert.Equal(t, float64(450000), d.Price)
	assert.Equal(t, [2]float64{-97.75, 30.25}, d.Coords)
	assert.Equal(t, []string{"downtown", "new"}, d.Tags)
	assert.Equal(t, []string{"pool", "gym"}, d.Amenities)
	assert.Equal(t, "https://cdn.example.com/loft.jpg", d.ImageURL)
	assert.Equal(t, "https://example.com/loft", d.ListingURL)
}

func TestMapDocuments_FlatShapeWithBoxedNumerics(t *testing.T) {
	docs := []bson.M{
		{
			"_id":      "prop-7",
			"name":     "Hillside House",
			"address":  "99 Ridge Rd",
			"city":     "Denver",
			"type":     "house",
			"status":   "for_sale",
			"price":    bson.M{"$numberInt": "725000"},
			"lat":      bson.M{"$numberDouble": "39.74"},
			"lng":      bson.M{"$numberDouble": "-104.99"},
			"tags":     bson.A{"mountain"},
			"imageUrl": "https://cdn.example.com/house.jpg",
		},
	}

	out := MapDocuments(docs)
	require.Len(t, out, 1)

	d := out[0]
	assert.Equal(t, "prop-7", d.ID)
	assert.Equal(t, "Hillside House", d.Title)
	assert.Equal(t, "Denver", d.Location)
	assert.Equal(t, "house", d.Category)
	assert.Equal(t, "for_sale", d.Status)
	assert.Equal(t, float64(725000), d.Price)
	assert.Equal(t, [2]float64{-104.99, 39.74}, d.Coords)
}

func TestMapDocuments_MissingAmenitiesIsEmptyNotNil(t *testing.T) {
	out := MapDocuments([]bson.M{{"_id": "x", "title": "Bare"}})
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Amenities)
	assert.Empty(t, out[0].Amenities)
	assert.NotNil(t, out[0].Tags)
	assert.Empty(t, out[0].Tags)
}

func TestMapDocuments_AbsentFieldsGetDefaults(t *testing.T) {
	out := MapDocuments([]bson.M{{}})
	require.Len(t, out, 1)
	d := out[0]
	assert.Zero(t, d.Price)
	assert.Empty(t, d.Title)
	assert.Empty(t, d.Status)
	assert.Equal(t, [2]float64{0, 0}, d.Coords)
}

func TestMapDocuments_MalformedValuesDoNotFail(t *testing.T) {
	out := MapDocuments([]bson.M{
		{
			"_id":       int64(42),
			"title":     bson.M{"nested": "junk"},
			"price":     "not a number",
			"amenities": bson.A{int32(1), "wifi", nil},
			"tags":      "garden, quiet , ",
		},
	})
	require.Len(t, out, 1)
	d := out[0]
	assert.Empty(t, d.Title)
	assert.Zero(t, d.Price)
	assert.Equal(t, []string{"wifi"}, d.Amenities)
	assert.Equal(t, []string{"garden", "quiet"}, d.Tags)
}

func TestMapDocuments_NumericEncodings(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want float64
	}{
		{"int32", int32(100), 100},
		{"int64", int64(200), 200},
		{"float64", 300.5, 300.5},
		{"numeric string", "400", 400},
		{"boxed long", bson.M{"$numberLong": "500"}, 500},
		{"boxed decimal string", map[string]any{"$numberDecimal": "600.25"}, 600.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := MapDocuments([]bson.M{{"price": tc.val}})
			require.Len(t, out, 1)
			assert.Equal(t, tc.want, out[0].Price)
		})
	}
}
