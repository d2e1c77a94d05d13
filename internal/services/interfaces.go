package services

import (
	"time"

	"salonbook/internal/models"
	"salonbook/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
	EnsureAdminUser(username, password string) (bool, error)
}

// DeletedAppointment reports what a cascade delete removed.
type DeletedAppointment struct {
	AppointmentID      uint   `json:"appointment_id"`
	RemovedIncomeCents *int64 `json:"removed_income_cents,omitempty"`
}

// AppointmentServicer defines the contract for the appointment side of the
// appointment-income consistency engine.
type AppointmentServicer interface {
	ScheduleAppointment(client string, date time.Time, timeOfDay, service string, priceCents *int64) (*models.Appointment, error)
	GetAppointmentByID(id uint) (*models.Appointment, error)
	ListAppointments(page pagination.PageRequest) (*pagination.PageResponse[models.Appointment], error)
	DeleteAppointment(id uint) (*DeletedAppointment, error)
}

// IncomeServicer defines the contract for the income side of the
// appointment-income consistency engine.
type IncomeServicer interface {
	RegisterManualIncome(date time.Time, amountCents int64, description string) (*models.Income, error)
	GetIncomeByID(id uint) (*models.Income, error)
	ListIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	UpdateIncome(id uint, date time.Time, amountCents int64, description string) (*models.Income, error)
	DeleteIncome(id uint) error
}

// DashboardSnapshot is the read-only aggregate view: today's and tomorrow's
// appointments plus revenue sums for the day, trailing week, and month.
type DashboardSnapshot struct {
	Date                 time.Time            `json:"date"`
	Tomorrow             time.Time            `json:"tomorrow"`
	TodayAppointments    []models.Appointment `json:"today_appointments"`
	TomorrowAppointments []models.Appointment `json:"tomorrow_appointments"`
	TodayCents           int64                `json:"today_cents"`
	WeekCents            int64                `json:"week_cents"`
	MonthCents           int64                `json:"month_cents"`
}

// DashboardServicer defines the contract for revenue reporting.
type DashboardServicer interface {
	Snapshot(asOf time.Time) (*DashboardSnapshot, error)
}
