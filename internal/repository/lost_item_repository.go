package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-lostfound/internal/domain"
)

type LostItemRepository interface {
	Create(ctx context.Context, item *domain.LostItem) error
	GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.LostItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.LostItem, int64, error)
	List(ctx context.Context, status *domain.LostItemStatus, params domain.PaginationParams) ([]domain.LostItem, int64, error)
	ListOpenReports(ctx context.Context) ([]domain.LostItem, error)
	NextCaseNumber(ctx context.Context) (string, error)
	TransitionStatus(ctx context.Context, caseNumber string, from, to domain.LostItemStatus) error
	CountByStatus(ctx context.Context) (map[domain.LostItemStatus]int64, error)
}

type lostItemRepository struct {
	db *sqlx.DB
}

func NewLostItemRepository(db *sqlx.DB) LostItemRepository {
	return &lostItemRepository{db: db}
}

func (r *lostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	query := `
		INSERT INTO lost_items (case_number, user_id, item_name, item_type, item_color,
			brand, description, last_seen_location, last_seen_date, status, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING submission_date`

	return r.db.QueryRowxContext(ctx, query,
		item.CaseNumber, item.UserID, item.ItemName, item.ItemType, item.ItemColor,
		item.Brand, item.Description, item.LastSeenLocation, item.LastSeenDate,
		item.Status, item.ImagePath,
	).Scan(&item.SubmissionDate)
}

func (r *lostItemRepository) GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.LostItem, error) {
	var item domain.LostItem
	query := `SELECT * FROM lost_items WHERE case_number = $1`

	err := r.db.GetContext(ctx, &item, query, caseNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *lostItemRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.LostItem, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM lost_items WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM lost_items
		WHERE user_id = $1
		ORDER BY submission_date DESC
		LIMIT $2 OFFSET $3`

	var items []domain.LostItem
	err := r.db.SelectContext(ctx, &items, query, userID, params.PageSize, params.Offset())
	return items, total, err
}

func (r *lostItemRepository) List(ctx context.Context, status *domain.LostItemStatus, params domain.PaginationParams) ([]domain.LostItem, int64, error) {
	params.Validate()

	var total int64
	var items []domain.LostItem

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM lost_items WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM lost_items
			WHERE status = $1
			ORDER BY submission_date DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &items, query, *status, params.PageSize, params.Offset())
		return items, total, err
	}

	countQuery := `SELECT COUNT(*) FROM lost_items`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM lost_items
		ORDER BY submission_date DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &items, query, params.PageSize, params.Offset())
	return items, total, err
}

// ListOpenReports returns reports still eligible for matching, oldest first
// so earlier reporters win ties deterministically.
func (r *lostItemRepository) ListOpenReports(ctx context.Context) ([]domain.LostItem, error) {
	var items []domain.LostItem
	query := `SELECT * FROM lost_items WHERE status = $1 ORDER BY submission_date ASC`
	err := r.db.SelectContext(ctx, &items, query, domain.LostStatusReported)
	return items, err
}

// NextCaseNumber issues a CU<year>NNNN identifier from a central sequence.
// The sequence never repeats, so an insert collision is a persistence error.
func (r *lostItemRepository) NextCaseNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT nextval('case_number_seq')`); err != nil {
		return "", err
	}
	return fmt.Sprintf("CU%d%04d", time.Now().Year(), n), nil
}

// TransitionStatus is a compare-and-set write: it succeeds only when the
// report is still in the expected status at commit time.
func (r *lostItemRepository) TransitionStatus(ctx context.Context, caseNumber string, from, to domain.LostItemStatus) error {
	if !from.CanTransitionTo(to) {
		return domain.ErrInvalidTransition
	}

	query := `UPDATE lost_items SET status = $3 WHERE case_number = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, query, caseNumber, from, to)
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

func (r *lostItemRepository) CountByStatus(ctx context.Context) (map[domain.LostItemStatus]int64, error) {
	rows := []struct {
		Status domain.LostItemStatus `db:"status"`
		Count  int64                 `db:"count"`
	}{}

	query := `SELECT status, COUNT(*) AS count FROM lost_items GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[domain.LostItemStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
