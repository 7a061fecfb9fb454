package bridge

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/repository/memory"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase"
)

func testSessionParams() usecase.CullParams {
	return usecase.CullParams{
		ZoomThreshold: 12,
		BatchSize:     250,
		PaddingFactor: 0.5,
	}
}

func warmStore() *domain.Snapshot {
	return &domain.Snapshot{
		Records: []domain.GeoRecord{
			{ID: 1, Position: domain.LatLng{Lat: 31.5, Lng: 74.3}, Category: domain.CategoryResidential, IsPaid: true},
			{ID: 2, Position: domain.LatLng{Lat: 31.5, Lng: 74.3}, Category: domain.CategoryCommercial},
		},
		Parcels: []domain.ParcelPolygon{},
	}
}

func regionMessage(lat, lng, latDelta, lngDelta float64) []byte {
	raw, _ := json.Marshal(map[string]interface{}{
		"type": domain.EventRegionChanged,
		"region": map[string]float64{
			"latitude":       lat,
			"longitude":      lng,
			"latitudeDelta":  latDelta,
			"longitudeDelta": lngDelta,
		},
	})
	return raw
}

func awaitRender(t *testing.T, s *Session) renderMessage {
	t.Helper()
	select {
	case raw := <-s.Outbound():
		var msg renderMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for render message")
		return renderMessage{}
	}
}

func TestSession_RegionChangeProducesDebouncedRender(t *testing.T) {
	store := memory.NewSnapshotStore()
	store.Set(warmStore())

	s := NewSession(store, testSessionParams(), 20*time.Millisecond, zap.NewNop())
	defer s.Close()

	// шквал быстрых жестов, затем затишье
	for i := 0; i < 5; i++ {
		require.NoError(t, s.HandleMessage(regionMessage(31.5, 74.3, 0.02, 0.022)))
		time.Sleep(3 * time.Millisecond)
	}

	msg := awaitRender(t, s)
	assert.Equal(t, domain.EventRender, msg.Type)
	assert.Len(t, msg.Markers, 2)

	// один батч на весь шквал
	select {
	case extra := <-s.Outbound():
		t.Fatalf("unexpected extra render message: %s", extra)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestSession_MarkerTappedInvokesCallback(t *testing.T) {
	store := memory.NewSnapshotStore()
	s := NewSession(store, testSessionParams(), 10*time.Millisecond, zap.NewNop())
	defer s.Close()

	tapped := make(chan int64, 1)
	s.SetOnMarkerTapped(func(id int64) { tapped <- id })

	require.NoError(t, s.HandleMessage([]byte(`{"type":"markerTapped","id":7}`)))

	select {
	case id := <-tapped:
		assert.Equal(t, int64(7), id)
	case <-time.After(time.Second):
		t.Fatal("callback was not invoked")
	}
}

func TestSession_UpdateFiltersRecomputesSynchronously(t *testing.T) {
	store := memory.NewSnapshotStore()
	store.Set(warmStore())

	s := NewSession(store, testSessionParams(), time.Hour, zap.NewNop())
	defer s.Close()

	// вьюпорт уже известен, debounce-интервал запредельный:
	// пересчёт при смене фильтра не должен через него проходить
	require.NoError(t, s.HandleMessage(regionMessage(31.5, 74.3, 0.02, 0.022)))

	state := domain.DefaultFilterState()
	state.Categories = []string{domain.CategoryCommercial}
	s.UpdateFilters(state)

	msg := awaitRender(t, s)
	require.Len(t, msg.Markers, 1)
	assert.Equal(t, int64(2), msg.Markers[0].ID)
}

func TestSession_MalformedMessageReturnsError(t *testing.T) {
	store := memory.NewSnapshotStore()
	s := NewSession(store, testSessionParams(), 10*time.Millisecond, zap.NewNop())
	defer s.Close()

	assert.Error(t, s.HandleMessage([]byte(`{"type":"warp"}`)))
	assert.Error(t, s.HandleMessage([]byte(`not json`)))
}

func TestSession_EmptySnapshotProducesNothing(t *testing.T) {
	store := memory.NewSnapshotStore() // снапшота ещё нет

	s := NewSession(store, testSessionParams(), 10*time.Millisecond, zap.NewNop())
	defer s.Close()

	require.NoError(t, s.HandleMessage(regionMessage(31.5, 74.3, 0.02, 0.022)))

	select {
	case raw := <-s.Outbound():
		t.Fatalf("unexpected render message before first snapshot: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSession_Close(t *testing.T) {
	store := memory.NewSnapshotStore()
	store.Set(warmStore())

	s := NewSession(store, testSessionParams(), time.Hour, zap.NewNop())

	require.NoError(t, s.HandleMessage(regionMessage(31.5, 74.3, 0.02, 0.022)))
	s.Close()

	// pending-пересчёт отменён, канал закрыт без сообщений
	_, open := <-s.Outbound()
	assert.False(t, open)

	assert.NotPanics(t, func() {
		s.Close()
		s.UpdateFilters(domain.DefaultFilterState())
		_ = s.HandleMessage(regionMessage(31.5, 74.3, 0.02, 0.022))
	})
}

func TestSession_ViewportTracksLastRegion(t *testing.T) {
	store := memory.NewSnapshotStore()
	s := NewSession(store, testSessionParams(), time.Hour, zap.NewNop())
	defer s.Close()

	require.NoError(t, s.HandleMessage(regionMessage(31.5, 74.3, 0.02, 0.022)))
	require.NoError(t, s.HandleMessage(regionMessage(33.6, 73.0, 0.05, 0.055)))

	v := s.Viewport()
	assert.Equal(t, 33.6, v.Center.Lat)
	assert.Equal(t, 73.0, v.Center.Lng)
}
