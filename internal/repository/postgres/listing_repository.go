package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
)

type listingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewListingRepository(db *DB) repository.ListingRepository {
	return &listingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// listingRow - строка таблицы listings
type listingRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Address     string    `db:"address"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Status      *string   `db:"status"`
	Price       float64   `db:"price"`
	Area        *float64  `db:"area"`
	Lat         float64   `db:"lat"`
	Lng         float64   `db:"lng"`
	IsPaid      bool      `db:"is_paid"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row *listingRow) toRecord() domain.GeoRecord {
	return domain.GeoRecord{
		ID:          row.ID,
		Position:    domain.LatLng{Lat: row.Lat, Lng: row.Lng},
		Category:    row.Category,
		Status:      row.Status,
		IsPaid:      row.IsPaid,
		Price:       row.Price,
		Area:        row.Area,
		Title:       row.Title,
		Address:     row.Address,
		Description: row.Description,
	}
}

func (r *listingRepository) Insert(ctx context.Context, record *domain.GeoRecord) (int64, error) {
	query := `
		INSERT INTO listings (title, address, description, category, status, price, area, lat, lng, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		record.Title,
		record.Address,
		record.Description,
		record.Category,
		record.Status,
		record.Price,
		record.Area,
		record.Position.Lat,
		record.Position.Lng,
		record.IsPaid,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert listing", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id int64) (*domain.GeoRecord, error) {
	query := `
		SELECT id, title, address, description, category, status, price, area, lat, lng, is_paid, created_at
		FROM listings
		WHERE id = $1
	`

	var row listingRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get listing by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	record := row.toRecord()
	return &record, nil
}

func (r *listingRepository) ListAll(ctx context.Context) ([]domain.GeoRecord, error) {
	query := `
		SELECT id, title, address, description, category, status, price, area, lat, lng, is_paid, created_at
		FROM listings
		ORDER BY id
	`

	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list listings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	records := make([]domain.GeoRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toRecord())
	}
	return records, nil
}

func (r *listingRepository) ListByCategories(ctx context.Context, categories []string) ([]domain.GeoRecord, error) {
	query := `
		SELECT id, title, address, description, category, status, price, area, lat, lng, is_paid, created_at
		FROM listings
		WHERE category = ANY($1)
		ORDER BY id
	`

	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(categories)); err != nil {
		r.logger.Error("Failed to list listings by categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	records := make([]domain.GeoRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toRecord())
	}
	return records, nil
}
