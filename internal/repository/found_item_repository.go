package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"campus-lostfound/internal/domain"
)

type FoundItemRepository interface {
	GetByID(ctx context.Context, id string) (*domain.FoundItem, error)
	List(ctx context.Context, status *domain.FoundItemStatus, params domain.PaginationParams) ([]domain.FoundItem, int64, error)
	NextID(ctx context.Context) (string, error)
	TransitionStatus(ctx context.Context, id string, from, to domain.FoundItemStatus) error
	CountByStatus(ctx context.Context) (map[domain.FoundItemStatus]int64, error)
}

type foundItemRepository struct {
	db *sqlx.DB
}

func NewFoundItemRepository(db *sqlx.DB) FoundItemRepository {
	return &foundItemRepository{db: db}
}

func (r *foundItemRepository) GetByID(ctx context.Context, id string) (*domain.FoundItem, error) {
	var item domain.FoundItem
	query := `SELECT * FROM found_items WHERE found_item_id = $1`

	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foundItemRepository) List(ctx context.Context, status *domain.FoundItemStatus, params domain.PaginationParams) ([]domain.FoundItem, int64, error) {
	params.Validate()

	var total int64
	var items []domain.FoundItem

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM found_items WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM found_items
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &items, query, *status, params.PageSize, params.Offset())
		return items, total, err
	}

	countQuery := `SELECT COUNT(*) FROM found_items`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM found_items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &items, query, params.PageSize, params.Offset())
	return items, total, err
}

func (r *foundItemRepository) NextID(ctx context.Context) (string, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT nextval('found_item_seq')`); err != nil {
		return "", err
	}
	return fmt.Sprintf("FI%d%04d", time.Now().Year(), n), nil
}

func (r *foundItemRepository) TransitionStatus(ctx context.Context, id string, from, to domain.FoundItemStatus) error {
	if !from.CanTransitionTo(to) {
		return domain.ErrInvalidTransition
	}

	query := `UPDATE found_items SET status = $3 WHERE found_item_id = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (r *foundItemRepository) CountByStatus(ctx context.Context) (map[domain.FoundItemStatus]int64, error) {
	rows := []struct {
		Status domain.FoundItemStatus `db:"status"`
		Count  int64                  `db:"count"`
	}{}

	query := `SELECT status, COUNT(*) AS count FROM found_items GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[domain.FoundItemStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
