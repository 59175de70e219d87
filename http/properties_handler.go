package httpapi

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/yourorg/listing-browser/internal/store"
	"github.com/yourorg/listing-browser/listing"
)

// ListingSource is what the handler needs from the store; tests swap in
// a fake without a running Mongo.
type ListingSource interface {
	FetchListings(ctx context.Context, limit int) ([]bson.M, error)
}

type PropertiesDeps struct {
	Source ListingSource
}

// RegisterProperties mounts the fetch endpoint. It takes no parameters:
// no pagination, no filtering, no sorting — the client filters in memory.
func RegisterProperties(r chi.Router, d PropertiesDeps) {
	r.Get("/api/properties", func(w http.ResponseWriter, req *http.Request) {
		raw, err := d.Source.FetchListings(req.Context(), store.MaxListings)
		if err != nil {
			log.Printf("[WARN] properties fetch failed: %v", err)
			// render.Status only records the code; the body must go out
			// through render.JSON for the 500 to actually be written.
			render.Status(req, http.StatusInternalServerError)
			render.JSON(w, req, map[string]any{"error": err.Error()})
			return
		}
		docs := listing.MapDocuments(raw)
		if len(docs) > store.MaxListings {
			docs = docs[:store.MaxListings]
		}
		log.Printf("[INFO] served %d listing documents", len(docs))
		render.JSON(w, req, map[string]any{"documents": docs})
	})
}
