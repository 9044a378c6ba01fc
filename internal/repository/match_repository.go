package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-lostfound/internal/domain"
)

type MatchRepository interface {
	// CommitFoundItemLog persists a found item together with the match
	// transitions for its candidates as a single transaction. A candidate
	// whose report is no longer Reported at commit time lost the
	// eligibility race and is dropped; any other write failure rolls the
	// whole unit back, including the found-item insert.
	CommitFoundItemLog(ctx context.Context, item *domain.FoundItem, candidates []domain.MatchCandidate) (*domain.MatchCommitResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	ListByFoundItem(ctx context.Context, foundItemID string) ([]domain.Match, error)
	List(ctx context.Context, status *domain.MatchStatus, params domain.PaginationParams) ([]domain.Match, int64, error)
	CommitConfirm(ctx context.Context, match *domain.Match) ([]string, error)
	CommitReject(ctx context.Context, match *domain.Match) error
	CommitClaim(ctx context.Context, match *domain.Match) error
	CountByStatus(ctx context.Context) (map[domain.MatchStatus]int64, error)
}

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CommitFoundItemLog(ctx context.Context, item *domain.FoundItem, candidates []domain.MatchCandidate) (*domain.MatchCommitResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertItem := `
		INSERT INTO found_items (found_item_id, office_id, item_name, item_color,
			description, found_date, found_location, status, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err = tx.QueryRowxContext(ctx, insertItem,
		item.ID, item.OfficeID, item.ItemName, item.ItemColor,
		item.Description, item.FoundDate, item.FoundLocation, item.Status, item.ImagePath,
	).Scan(&item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert found item: %w", err)
	}

	result := &domain.MatchCommitResult{}

	guardReport := `UPDATE lost_items SET status = $2 WHERE case_number = $1 AND status = $3`
	insertMatch := `
		INSERT INTO matches (match_id, found_item_id, case_number, confirmation, match_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	for _, c := range candidates {
		res, err := tx.ExecContext(ctx, guardReport,
			c.Report.CaseNumber, domain.LostStatusMatched, domain.LostStatusReported)
		if err != nil {
			return nil, fmt.Errorf("transition report %s: %w", c.Report.CaseNumber, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			// Lost the race: the report left the open pool since it was read.
			result.Dropped = append(result.Dropped, c.Report.CaseNumber)
			continue
		}

		match := domain.Match{
			ID:          uuid.New(),
			FoundItemID: c.FoundItemID,
			CaseNumber:  c.Report.CaseNumber,
			Status:      domain.MatchStatusPending,
		}
		err = tx.QueryRowxContext(ctx, insertMatch,
			match.ID, match.FoundItemID, match.CaseNumber, match.Confirmation, match.Status,
		).Scan(&match.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert match for %s: %w", c.Report.CaseNumber, err)
		}

		result.Committed = append(result.Committed, match)
	}

	if len(result.Committed) > 0 {
		transitionItem := `UPDATE found_items SET status = $2 WHERE found_item_id = $1 AND status = $3`
		if _, err := tx.ExecContext(ctx, transitionItem,
			item.ID, domain.FoundStatusMatched, domain.FoundStatusFound); err != nil {
			return nil, fmt.Errorf("transition found item: %w", err)
		}
		item.Status = domain.FoundStatusMatched
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE match_id = $1`

	err := r.db.GetContext(ctx, &match, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) ListByFoundItem(ctx context.Context, foundItemID string) ([]domain.Match, error) {
	var matches []domain.Match
	query := `SELECT * FROM matches WHERE found_item_id = $1 ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &matches, query, foundItemID)
	return matches, err
}

func (r *matchRepository) List(ctx context.Context, status *domain.MatchStatus, params domain.PaginationParams) ([]domain.Match, int64, error) {
	params.Validate()

	var total int64
	var matches []domain.Match

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM matches WHERE match_status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM matches
			WHERE match_status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &matches, query, *status, params.PageSize, params.Offset())
		return matches, total, err
	}

	countQuery := `SELECT COUNT(*) FROM matches`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM matches
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &matches, query, params.PageSize, params.Offset())
	return matches, total, err
}

// CommitConfirm confirms one pending match and rejects its pending siblings
// on the same found item; reports belonging to those siblings return to the
// open pool when nothing else holds them. Returns the case numbers of the
// rejected siblings.
func (r *matchRepository) CommitConfirm(ctx context.Context, match *domain.Match) ([]string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	confirm := `
		UPDATE matches SET match_status = $2, confirmation = true
		WHERE match_id = $1 AND match_status = $3`
	res, err := tx.ExecContext(ctx, confirm, match.ID, domain.MatchStatusConfirmed, domain.MatchStatusPending)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrStatusConflict
	}

	rejectSiblings := `
		UPDATE matches SET match_status = $3
		WHERE found_item_id = $1 AND match_id <> $2 AND match_status = $4
		RETURNING case_number`
	var rejected []string
	if err := tx.SelectContext(ctx, &rejected, rejectSiblings,
		match.FoundItemID, match.ID, domain.MatchStatusRejected, domain.MatchStatusPending); err != nil {
		return nil, err
	}

	reopen := `
		UPDATE lost_items l SET status = $2
		WHERE l.case_number = $1 AND l.status = $3
			AND NOT EXISTS (
				SELECT 1 FROM matches m
				WHERE m.case_number = l.case_number AND m.match_status <> $4
			)`
	for _, caseNumber := range rejected {
		if _, err := tx.ExecContext(ctx, reopen,
			caseNumber, domain.LostStatusReported, domain.LostStatusMatched, domain.MatchStatusRejected); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	match.Status = domain.MatchStatusConfirmed
	match.Confirmation = true
	return rejected, nil
}

// CommitReject rejects a pending match, returns its report to the open pool
// and, when the found item has no other live match, back to Found.
func (r *matchRepository) CommitReject(ctx context.Context, match *domain.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	reject := `UPDATE matches SET match_status = $2 WHERE match_id = $1 AND match_status = $3`
	res, err := tx.ExecContext(ctx, reject, match.ID, domain.MatchStatusRejected, domain.MatchStatusPending)
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

	reopenReport := `
		UPDATE lost_items l SET status = $2
		WHERE l.case_number = $1 AND l.status = $3
			AND NOT EXISTS (
				SELECT 1 FROM matches m
				WHERE m.case_number = l.case_number AND m.match_status <> $4
			)`
	if _, err := tx.ExecContext(ctx, reopenReport,
		match.CaseNumber, domain.LostStatusReported, domain.LostStatusMatched, domain.MatchStatusRejected); err != nil {
		return err
	}

	releaseItem := `
		UPDATE found_items f SET status = $2
		WHERE f.found_item_id = $1 AND f.status = $3
			AND NOT EXISTS (
				SELECT 1 FROM matches m
				WHERE m.found_item_id = f.found_item_id AND m.match_status <> $4
			)`
	if _, err := tx.ExecContext(ctx, releaseItem,
		match.FoundItemID, domain.FoundStatusFound, domain.FoundStatusMatched, domain.MatchStatusRejected); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	match.Status = domain.MatchStatusRejected
	return nil
}

func (r *matchRepository) CountByStatus(ctx context.Context) (map[domain.MatchStatus]int64, error) {
	rows := []struct {
		Status domain.MatchStatus `db:"match_status"`
		Count  int64              `db:"count"`
	}{}

	query := `SELECT match_status, COUNT(*) AS count FROM matches GROUP BY match_status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[domain.MatchStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CommitClaim moves both sides of a confirmed match to Claimed atomically.
func (r *matchRepository) CommitClaim(ctx context.Context, match *domain.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	claimReport := `UPDATE lost_items SET status = $2 WHERE case_number = $1 AND status = $3`
	res, err := tx.ExecContext(ctx, claimReport,
		match.CaseNumber, domain.LostStatusClaimed, domain.LostStatusMatched)
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

	claimItem := `UPDATE found_items SET status = $2 WHERE found_item_id = $1 AND status = $3`
	res, err = tx.ExecContext(ctx, claimItem,
		match.FoundItemID, domain.FoundStatusClaimed, domain.FoundStatusMatched)
	if err != nil {
		return err
	}
	rows, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStatusConflict
	}

	return tx.Commit()
}
