package bridge

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

const outboundBuffer = 8

// Session - серверный двойник экранного контроллера: владеет FilterState
// и Viewport одного подключённого клиента, принимает события моста
// и отдаёт render-батчи. Все мутации состояния синхронны под мьютексом,
// last-write-wins.
type Session struct {
	id     string
	store  repository.SnapshotStore
	params usecase.CullParams
	logger *zap.Logger
	deb    *Debouncer
	out    chan []byte

	onMarkerTapped func(id int64)

	mu       sync.Mutex
	filters  domain.FilterState
	viewport domain.Viewport
	closed   bool
}

// NewSession создаёт сессию с разрешающими фильтрами по умолчанию
func NewSession(
	store repository.SnapshotStore,
	params usecase.CullParams,
	debounceInterval time.Duration,
	logger *zap.Logger,
) *Session {
	return &Session{
		id:      uuid.NewString(),
		store:   store,
		params:  params,
		logger:  logger,
		deb:     NewDebouncer(debounceInterval),
		out:     make(chan []byte, outboundBuffer),
		filters: domain.DefaultFilterState(),
	}
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string { return s.id }

// Outbound - канал исходящих render-сообщений для рендерера
func (s *Session) Outbound() <-chan []byte { return s.out }

// SetOnMarkerTapped задаёт обработчик нажатия на маркер.
// Мост не вызывает навигацию сам - он только отдаёт типизированное
// событие контроллеру.
func (s *Session) SetOnMarkerTapped(fn func(id int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMarkerTapped = fn
}

// HandleMessage принимает сырое сообщение рендерера.
// regionChanged приходит с высокой частотой во время жеста, поэтому
// пересчёт откладывается до затишья; до этого клиент продолжает
// видеть предыдущий стабильный результат.
func (s *Session) HandleMessage(raw []byte) error {
	event, err := DecodeEvent(raw)
	if err != nil {
		return err
	}

	switch e := event.(type) {
	case domain.MarkerTapped:
		s.mu.Lock()
		fn := s.onMarkerTapped
		s.mu.Unlock()
		if fn != nil {
			fn(e.ID)
		}

	case domain.RegionChanged:
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return nil
		}
		s.viewport = e.Viewport
		s.mu.Unlock()
		s.deb.Trigger(s.recompute)
	}

	return nil
}

// UpdateFilters заменяет состояние фильтров и пересчитывает сразу:
// переключение фильтра - единичное действие, debounce тут не нужен.
func (s *Session) UpdateFilters(state domain.FilterState) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.filters = state
	s.mu.Unlock()
	s.recompute()
}

// Viewport возвращает последнюю известную область карты
func (s *Session) Viewport() domain.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// Close останавливает сессию: pending-таймер отменяется,
// запоздавшие callbacks становятся no-op, исходящий канал закрывается.
func (s *Session) Close() {
	s.deb.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.out)
}

func (s *Session) recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	snap := s.store.Current()
	if snap == nil {
		return
	}

	filtered := usecase.Filter(snap.Records, s.filters)
	rendered := usecase.Cull(filtered, snap.Parcels, s.viewport, s.params)

	markers := make([]dto.MarkerDTO, 0, len(rendered.Points))
	for _, r := range rendered.Points {
		markers = append(markers, dto.ConvertMarker(r))
	}
	polygons := make([]dto.PolygonDTO, 0, len(rendered.Polygons))
	for _, p := range rendered.Polygons {
		polygons = append(polygons, dto.ConvertPolygon(p))
	}

	msg, err := EncodeRender(markers, polygons)
	if err != nil {
		s.logger.Error("Failed to encode render message",
			zap.String("session_id", s.id),
			zap.Error(err))
		return
	}

	select {
	case s.out <- msg:
	default:
		// Медленный потребитель: батч устарел к моменту доставки,
		// свежий придёт со следующим пересчётом
		s.logger.Debug("Dropping render message, outbound buffer full",
			zap.String("session_id", s.id))
	}
}
