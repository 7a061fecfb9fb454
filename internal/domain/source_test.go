package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawPlot_FirstRing(t *testing.T) {
	ring := []RawXY{{X: 74.1, Y: 31.1}, {X: 74.2, Y: 31.2}, {X: 74.3, Y: 31.3}}

	t.Run("WKT preferred", func(t *testing.T) {
		p := RawPlot{WKT: [][][]RawXY{{ring}}}
		assert.Equal(t, ring, p.FirstRing())
	})

	t.Run("SHAPE fallback when WKT empty", func(t *testing.T) {
		p := RawPlot{Shape: [][][]RawXY{{ring}}}
		assert.Equal(t, ring, p.FirstRing())
	})

	t.Run("empty geometry returns nil", func(t *testing.T) {
		p := RawPlot{}
		assert.Nil(t, p.FirstRing())
	})

	t.Run("shape without rings returns nil", func(t *testing.T) {
		p := RawPlot{WKT: [][][]RawXY{{}}}
		assert.Nil(t, p.FirstRing())
	})
}

func TestLatLng_Valid(t *testing.T) {
	assert.True(t, LatLng{Lat: 31.5, Lng: 74.3}.Valid())
	assert.True(t, LatLng{Lat: -90, Lng: 180}.Valid())
	assert.False(t, LatLng{Lat: 91, Lng: 0}.Valid())
	assert.False(t, LatLng{Lat: 0, Lng: -181}.Valid())
}
