package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"campus-lostfound/internal/domain"
)

type ArchiveRepository interface {
	// CommitArchive archives a report and records its disposition in one
	// transaction. The report must currently be Claimed or Unclaimed.
	CommitArchive(ctx context.Context, archive *domain.Archive) error
	ListByCase(ctx context.Context, caseNumber string) ([]domain.Archive, error)
}

type archiveRepository struct {
	db *sqlx.DB
}

func NewArchiveRepository(db *sqlx.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) CommitArchive(ctx context.Context, archive *domain.Archive) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	transition := `
		UPDATE lost_items SET status = $2
		WHERE case_number = $1 AND status IN ($3, $4)`
	res, err := tx.ExecContext(ctx, transition,
		archive.CaseNumber, domain.LostStatusArchived, domain.LostStatusClaimed, domain.LostStatusUnclaimed)
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

	insert := `
		INSERT INTO archives (archive_id, case_number, disposition)
		VALUES ($1, $2, $3)
		RETURNING archive_date`
	err = tx.QueryRowxContext(ctx, insert,
		archive.ID, archive.CaseNumber, archive.Disposition,
	).Scan(&archive.ArchiveDate)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *archiveRepository) ListByCase(ctx context.Context, caseNumber string) ([]domain.Archive, error) {
	var archives []domain.Archive
	query := `SELECT * FROM archives WHERE case_number = $1 ORDER BY archive_date DESC`
	err := r.db.SelectContext(ctx, &archives, query, caseNumber)
	return archives, err
}
