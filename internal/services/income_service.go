package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "salonbook/internal/errors"
	"salonbook/internal/models"
	"salonbook/internal/pagination"
)

// incomeService handles income records and protects appointment-derived
// income from direct deletion.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// RegisterManualIncome creates a manual income record.
func (s *incomeService) RegisterManualIncome(date time.Time, amountCents int64, description string) (*models.Income, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	if date.IsZero() {
		date = today()
	} else {
		date = dateOnly(date)
	}

	income := &models.Income{
		Date:        date,
		AmountCents: amountCents,
		Description: description,
		Category:    models.IncomeCategoryManual,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetIncomeByID retrieves an income record by ID
func (s *incomeService) GetIncomeByID(id uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.First(&income, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// ListIncomes retrieves a paginated list of all income records, most recent
// date first, then most recently registered first.
func (s *incomeService) ListIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, registered_at DESC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateIncome edits an income record in place. The category never changes,
// and editing an appointment-derived income does not touch the owning
// appointment's stored price.
func (s *incomeService) UpdateIncome(id uint, date time.Time, amountCents int64, description string) (*models.Income, error) {
	income, err := s.GetIncomeByID(id)
	if err != nil {
		return nil, err
	}

	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	updates := map[string]interface{}{
		"date":         dateOnly(date),
		"amount_cents": amountCents,
		"description":  description,
	}
	if err := s.db.Model(income).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// DeleteIncome deletes a manual income record. Appointment-derived income is
// protected: the caller must delete the owning appointment instead.
func (s *incomeService) DeleteIncome(id uint) error {
	income, err := s.GetIncomeByID(id)
	if err != nil {
		return err
	}

	if income.Category == models.IncomeCategoryAppointment {
		return apperrors.ErrLinkedIncome
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
