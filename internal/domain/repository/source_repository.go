package repository

import (
	"context"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// SourceRepository определяет методы загрузки сырых данных карты
// с внешних GIS endpoint'ов. Оба метода независимы: падение одного
// не влияет на другой.
type SourceRepository interface {
	// FetchProperties загружает сырые точечные объекты
	FetchProperties(ctx context.Context) ([]domain.RawProperty, error)

	// FetchPlots загружает сырые земельные участки
	FetchPlots(ctx context.Context) ([]domain.RawPlot, error)
}
