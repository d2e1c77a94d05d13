package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "salonbook/internal/errors"
	"salonbook/internal/models"
	"salonbook/internal/pagination"
)

// appointmentService enforces the creation and deletion invariants that link
// appointments to their derived income records.
type appointmentService struct {
	db *gorm.DB
}

// NewAppointmentService creates a new AppointmentServicer.
func NewAppointmentService(db *gorm.DB) AppointmentServicer {
	return &appointmentService{db: db}
}

// ScheduleAppointment creates a new appointment. When a price is given, the
// derived income record and the appointment referencing it are inserted in a
// single database transaction: either both exist afterwards or neither does.
func (s *appointmentService) ScheduleAppointment(client string, date time.Time, timeOfDay, service string, priceCents *int64) (*models.Appointment, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "client name is required")
	}
	if timeOfDay == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "appointment time is required")
	}
	if priceCents != nil && *priceCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be positive")
	}

	date = dateOnly(date)
	if date.Before(today()) {
		return nil, apperrors.ErrPastAppointment
	}

	appointment := &models.Appointment{
		Client:     client,
		Date:       date,
		Time:       timeOfDay,
		Service:    service,
		PriceCents: priceCents,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if priceCents != nil {
			income := &models.Income{
				Date:        date,
				AmountCents: *priceCents,
				Description: derivedIncomeDescription(client, service),
				Category:    models.IncomeCategoryAppointment,
			}
			// The income insert comes first so its generated ID can be
			// referenced; the enclosing transaction guarantees no orphan
			// survives if the appointment insert fails.
			if err := tx.Create(income).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			// Only the foreign key is set; assigning the association would
			// make GORM upsert the income a second time.
			appointment.IncomeID = &income.ID
		}

		if err := tx.Create(appointment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

// derivedIncomeDescription synthesizes the description of an
// appointment-derived income record.
func derivedIncomeDescription(client, service string) string {
	if service == "" {
		service = "no service"
	}
	return fmt.Sprintf("Appointment for %s - %s", client, service)
}

// GetAppointmentByID retrieves an appointment by ID
func (s *appointmentService) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &appointment, nil
}

// ListAppointments retrieves a paginated list of all appointments ordered by
// date then time of day. The time column is zero-padded "HH:MM", so a
// lexicographic sort is chronological.
func (s *appointmentService) ListAppointments(page pagination.PageRequest) (*pagination.PageResponse[models.Appointment], error) {
	page.Defaults()

	base := s.db.Model(&models.Appointment{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var appointments []models.Appointment
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date ASC, time ASC").
		Find(&appointments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(appointments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteAppointment deletes an appointment and, when one is linked, its
// derived income record. Both deletions happen in the same transaction so a
// failure leaves the pair intact.
func (s *appointmentService) DeleteAppointment(id uint) (*DeletedAppointment, error) {
	appointment, err := s.GetAppointmentByID(id)
	if err != nil {
		return nil, err
	}

	deleted := &DeletedAppointment{AppointmentID: appointment.ID}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var income *models.Income
		if appointment.IncomeID != nil {
			income = &models.Income{}
			// Deliberate fetch-by-id rather than a relation traversal;
			// the link is just a foreign key.
			if err := tx.First(income, *appointment.IncomeID).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				income = nil
			}
		}

		// The appointment row holds the foreign key, so it goes first;
		// deleting the income while still referenced would violate the
		// constraint.
		if err := tx.Delete(appointment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if income != nil {
			if err := tx.Delete(income).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			amount := income.AmountCents
			deleted.RemovedIncomeCents = &amount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
