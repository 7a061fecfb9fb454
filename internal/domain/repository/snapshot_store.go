package repository

import (
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// SnapshotStore хранит текущий снапшот карты между циклами обновления.
// Current возвращает nil, пока ни один цикл не завершился.
type SnapshotStore interface {
	Current() *domain.Snapshot
	Set(snapshot *domain.Snapshot)
}
