package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"campus-lostfound/internal/domain"
)

type OfficeRepository interface {
	Create(ctx context.Context, office *domain.Office) error
	GetByID(ctx context.Context, id string) (*domain.Office, error)
	List(ctx context.Context) ([]domain.Office, error)
	Seed(ctx context.Context, offices []domain.Office) error
}

type officeRepository struct {
	db *sqlx.DB
}

func NewOfficeRepository(db *sqlx.DB) OfficeRepository {
	return &officeRepository{db: db}
}

func (r *officeRepository) Create(ctx context.Context, office *domain.Office) error {
	query := `
		INSERT INTO offices (office_id, office_name, contact_email, responsible_person)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		office.ID, office.Name, office.ContactEmail, office.ResponsiblePerson)
	return err
}

func (r *officeRepository) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	var office domain.Office
	query := `SELECT * FROM offices WHERE office_id = $1`

	err := r.db.GetContext(ctx, &office, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *officeRepository) List(ctx context.Context) ([]domain.Office, error) {
	var offices []domain.Office
	query := `SELECT * FROM offices ORDER BY office_id`
	err := r.db.SelectContext(ctx, &offices, query)
	return offices, err
}

func (r *officeRepository) Seed(ctx context.Context, offices []domain.Office) error {
	query := `
		INSERT INTO offices (office_id, office_name, contact_email, responsible_person)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (office_id) DO NOTHING`

	for _, office := range offices {
		if _, err := r.db.ExecContext(ctx, query,
			office.ID, office.Name, office.ContactEmail, office.ResponsiblePerson); err != nil {
			return err
		}
	}
	return nil
}
