package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	httpapi "github.com/yourorg/listing-browser/http"
	"github.com/yourorg/listing-browser/internal/logger"
)

type staticSource []bson.M

func (s staticSource) FetchListings(ctx context.Context, limit int) ([]bson.M, error) {
	return s, nil
}

func TestRouter_HealthAndProperties(t *testing.T) {
	lg := logger.New(io.Discard)
	router := BuildRouter(httpapi.PropertiesDeps{Source: staticSource{{"_id": "1", "title": "A"}}}, lg)
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/properties")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}
