package refresh

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// Refresher - цикл обновления снапшота карты
type Refresher interface {
	RefreshSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

// Worker периодически обновляет снапшот карты из upstream-источников.
// Первый цикл выполняется сразу при старте, чтобы карта не ждала
// целый интервал после деплоя.
type Worker struct {
	refresher Refresher
	interval  time.Duration
	logger    *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewWorker создает воркер обновления снапшотов
func NewWorker(refresher Refresher, interval time.Duration, logger *zap.Logger) *Worker {
	return &Worker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Name возвращает имя воркера
func (w *Worker) Name() string {
	return "snapshot-refresh"
}

// Start запускает цикл обновления и блокируется до остановки
func (w *Worker) Start(ctx context.Context) error {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Refresh worker context cancelled")
			return nil
		case <-w.stopChan:
			w.logger.Info("Refresh worker stopped")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// Stop останавливает воркер
func (w *Worker) Stop() error {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	return nil
}

func (w *Worker) refresh(ctx context.Context) {
	start := time.Now()
	snap, err := w.refresher.RefreshSnapshot(ctx)
	if err != nil {
		// Ошибка терминальна для этого цикла, ретраев нет -
		// следующая попытка по расписанию
		w.logger.Error("Snapshot refresh failed", zap.Error(err))
		return
	}
	w.logger.Debug("Snapshot refresh completed",
		zap.Int("records", len(snap.Records)),
		zap.Int("parcels", len(snap.Parcels)),
		zap.Duration("took", time.Since(start)))
}
