package gis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/config"
)

func TestClient_FetchProperties(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"PropertyId": 1, "geometry": {"x": 74.3, "y": 31.5}, "price": 5000, "type": "Residential", "status": "New"},
				{"PropertyId": 2, "geometry": null, "price": 100}
			]`))
		}))
		defer server.Close()

		cfg := &config.SourceConfig{
			PropertiesURL:  server.URL + "/properties",
			RequestTimeout: 5 * time.Second,
		}
		client := NewClient(cfg, logger)

		props, err := client.FetchProperties(context.Background())
		require.NoError(t, err)
		require.Len(t, props, 2)

		assert.Equal(t, int64(1), *props[0].PropertyID)
		assert.Equal(t, 74.3, *props[0].Geometry.X)
		assert.Equal(t, 31.5, *props[0].Geometry.Y)
		assert.Equal(t, "New", *props[0].Status)
		assert.Nil(t, props[1].Geometry, "null geometry kept raw, dropped later by normalizer")
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}))
		defer server.Close()

		cfg := &config.SourceConfig{
			PropertiesURL:  server.URL,
			RequestTimeout: 5 * time.Second,
		}
		client := NewClient(cfg, logger)

		props, err := client.FetchProperties(context.Background())
		assert.Error(t, err)
		assert.Nil(t, props)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not": "an array"`))
		}))
		defer server.Close()

		cfg := &config.SourceConfig{
			PropertiesURL:  server.URL,
			RequestTimeout: 5 * time.Second,
		}
		client := NewClient(cfg, logger)

		_, err := client.FetchProperties(context.Background())
		assert.Error(t, err)
	})
}

func TestClient_FetchPlots(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{
					"id": 10,
					"landuse_su": "residential",
					"WKT": [[[{"x": 74.1, "y": 31.1}, {"x": 74.2, "y": 31.2}, {"x": 74.3, "y": 31.3}]]]
				}
			]`))
		}))
		defer server.Close()

		cfg := &config.SourceConfig{
			PlotsURL:       server.URL + "/plots",
			RequestTimeout: 5 * time.Second,
		}
		client := NewClient(cfg, logger)

		plots, err := client.FetchPlots(context.Background())
		require.NoError(t, err)
		require.Len(t, plots, 1)

		assert.Equal(t, int64(10), plots[0].ID)
		assert.Equal(t, "residential", plots[0].LanduseSU)
		require.Len(t, plots[0].FirstRing(), 3)
		assert.Equal(t, 74.1, plots[0].FirstRing()[0].X)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		cfg := &config.SourceConfig{
			PlotsURL:       server.URL,
			RequestTimeout: 5 * time.Second,
		}
		client := NewClient(cfg, logger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchPlots(ctx)
		assert.Error(t, err)
	})
}
