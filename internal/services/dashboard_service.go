package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "salonbook/internal/errors"
	"salonbook/internal/models"
)

// dashboardService computes the read-only revenue and schedule aggregates.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// Snapshot aggregates the appointments for asOf and the following day plus
// the income sums for the day, the trailing 7-day window, and the calendar
// month containing asOf. It performs no writes.
func (s *dashboardService) Snapshot(asOf time.Time) (*DashboardSnapshot, error) {
	asOf = dateOnly(asOf)
	tomorrow := asOf.AddDate(0, 0, 1)

	snapshot := &DashboardSnapshot{
		Date:     asOf,
		Tomorrow: tomorrow,
	}

	var err error
	if snapshot.TodayAppointments, err = s.appointmentsOn(asOf); err != nil {
		return nil, err
	}
	if snapshot.TomorrowAppointments, err = s.appointmentsOn(tomorrow); err != nil {
		return nil, err
	}

	if snapshot.TodayCents, err = s.incomeBetween(asOf, asOf); err != nil {
		return nil, err
	}

	weekStart := asOf.AddDate(0, 0, -6)
	if snapshot.WeekCents, err = s.incomeBetween(weekStart, asOf); err != nil {
		return nil, err
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	if snapshot.MonthCents, err = s.incomeBetween(monthStart, monthEnd); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// appointmentsOn returns the appointments for one calendar date, earliest
// time of day first.
func (s *dashboardService) appointmentsOn(date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.
		Where("date = ?", date).
		Order("time ASC").
		Find(&appointments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return appointments, nil
}

// incomeBetween sums income amounts for dates in [from, to], inclusive.
func (s *dashboardService) incomeBetween(from, to time.Time) (int64, error) {
	var total int64
	if err := s.db.Model(&models.Income{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
