package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_Zoom(t *testing.T) {
	tests := []struct {
		name     string
		lngDelta float64
		expected int
	}{
		{
			name:     "whole world span",
			lngDelta: 360,
			expected: 0,
		},
		{
			name:     "city level span",
			lngDelta: 0.0879, // 360 / 2^12
			expected: 12,
		},
		{
			name:     "street level span",
			lngDelta: 0.0055, // 360 / 2^16
			expected: 16,
		},
		{
			name:     "span wider than the world clamps to zero",
			lngDelta: 720,
			expected: 0,
		},
		{
			name:     "microscopic span clamps to max zoom",
			lngDelta: 0.0000001,
			expected: MaxZoomLevel,
		},
		{
			name:     "zero delta treated as max zoom",
			lngDelta: 0,
			expected: MaxZoomLevel,
		},
		{
			name:     "negative delta treated as max zoom",
			lngDelta: -1,
			expected: MaxZoomLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{LongitudeDelta: tt.lngDelta}
			assert.Equal(t, tt.expected, v.Zoom())
		})
	}
}

func TestViewport_Bounds(t *testing.T) {
	v := Viewport{
		Center:         LatLng{Lat: 31.5, Lng: 74.3},
		LatitudeDelta:  0.2,
		LongitudeDelta: 0.4,
	}

	t.Run("no padding", func(t *testing.T) {
		b := v.Bounds(0)
		assert.InDelta(t, 31.4, b.MinLat, 1e-9)
		assert.InDelta(t, 31.6, b.MaxLat, 1e-9)
		assert.InDelta(t, 74.1, b.MinLng, 1e-9)
		assert.InDelta(t, 74.5, b.MaxLng, 1e-9)
	})

	t.Run("half span padding extends each side", func(t *testing.T) {
		b := v.Bounds(0.5)
		assert.InDelta(t, 31.3, b.MinLat, 1e-9)
		assert.InDelta(t, 31.7, b.MaxLat, 1e-9)
		assert.InDelta(t, 73.9, b.MinLng, 1e-9)
		assert.InDelta(t, 74.7, b.MaxLng, 1e-9)
	})

	t.Run("padded box contains unpadded box", func(t *testing.T) {
		inner := v.Bounds(0)
		outer := v.Bounds(0.5)
		assert.True(t, outer.Contains(LatLng{Lat: inner.MinLat, Lng: inner.MinLng}))
		assert.True(t, outer.Contains(LatLng{Lat: inner.MaxLat, Lng: inner.MaxLng}))
	})
}

func TestBoundingBox_Contains(t *testing.T) {
	b := BoundingBox{MinLat: 0, MinLng: 0, MaxLat: 10, MaxLng: 10}

	assert.True(t, b.Contains(LatLng{Lat: 5, Lng: 5}))
	assert.True(t, b.Contains(LatLng{Lat: 0, Lng: 0}), "boundary is inclusive")
	assert.True(t, b.Contains(LatLng{Lat: 10, Lng: 10}), "boundary is inclusive")
	assert.False(t, b.Contains(LatLng{Lat: -1, Lng: 5}))
	assert.False(t, b.Contains(LatLng{Lat: 5, Lng: 11}))
}

func TestBoundingBox_ContainsAnyVertex(t *testing.T) {
	b := BoundingBox{MinLat: 0, MinLng: 0, MaxLat: 10, MaxLng: 10}

	t.Run("partially inside polygon passes", func(t *testing.T) {
		vertices := []LatLng{
			{Lat: 1, Lng: 2},
			{Lat: 3, Lng: 4},
			{Lat: 5, Lng: 6},
		}
		assert.True(t, b.ContainsAnyVertex(vertices))
	})

	t.Run("fully outside polygon fails", func(t *testing.T) {
		vertices := []LatLng{
			{Lat: 20, Lng: 20},
			{Lat: 25, Lng: 25},
			{Lat: 30, Lng: 30},
		}
		assert.False(t, b.ContainsAnyVertex(vertices))
	})

	t.Run("single vertex inside is enough", func(t *testing.T) {
		vertices := []LatLng{
			{Lat: 20, Lng: 20},
			{Lat: 5, Lng: 5},
			{Lat: 30, Lng: 30},
		}
		assert.True(t, b.ContainsAnyVertex(vertices))
	})

	t.Run("empty vertex list fails", func(t *testing.T) {
		assert.False(t, b.ContainsAnyVertex(nil))
	})
}
