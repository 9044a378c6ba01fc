package service

import (
	"context"
	"errors"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/repository"
)

var (
	ErrOfficeNotFound = errors.New("office not found")
	ErrOfficeExists   = errors.New("office already exists")
)

type OfficeService interface {
	Create(ctx context.Context, input domain.CreateOfficeInput) (*domain.Office, error)
	GetByID(ctx context.Context, id string) (*domain.Office, error)
	List(ctx context.Context) ([]domain.Office, error)
	SeedDefaults(ctx context.Context) error
}

type officeService struct {
	officeRepo repository.OfficeRepository
}

func NewOfficeService(officeRepo repository.OfficeRepository) OfficeService {
	return &officeService{officeRepo: officeRepo}
}

func (s *officeService) Create(ctx context.Context, input domain.CreateOfficeInput) (*domain.Office, error) {
	if input.ID == "" {
		return nil, domain.NewValidationError("office_id", "required")
	}
	if input.Name == "" {
		return nil, domain.NewValidationError("office_name", "required")
	}
	if input.ContactEmail == "" {
		return nil, domain.NewValidationError("contact_email", "required")
	}

	existing, err := s.officeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOfficeExists
	}

	office := &domain.Office{
		ID:                input.ID,
		Name:              input.Name,
		ContactEmail:      input.ContactEmail,
		ResponsiblePerson: input.ResponsiblePerson,
	}
	if err := s.officeRepo.Create(ctx, office); err != nil {
		return nil, err
	}
	return office, nil
}

func (s *officeService) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	office, err := s.officeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, ErrOfficeNotFound
	}
	return office, nil
}

func (s *officeService) List(ctx context.Context) ([]domain.Office, error) {
	return s.officeRepo.List(ctx)
}

func (s *officeService) SeedDefaults(ctx context.Context) error {
	return s.officeRepo.Seed(ctx, domain.DefaultOffices)
}
