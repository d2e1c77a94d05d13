package models

import "time"

// IncomeCategory distinguishes how an income record came to exist.
type IncomeCategory string

const (
	// IncomeCategoryManual is income entered directly by the operator.
	IncomeCategoryManual IncomeCategory = "manual"
	// IncomeCategoryAppointment is income created automatically when a
	// priced appointment was scheduled. It can only be deleted through
	// its owning appointment.
	IncomeCategoryAppointment IncomeCategory = "appointment"
)

// Income is a single revenue record, in cents.
type Income struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Date         time.Time      `gorm:"not null;index" json:"date"`
	AmountCents  int64          `gorm:"not null" json:"amount_cents"`
	Description  string         `gorm:"size:200" json:"description,omitempty"`
	RegisteredAt time.Time      `gorm:"autoCreateTime" json:"registered_at"`
	Category     IncomeCategory `gorm:"size:50;not null;default:manual" json:"category"`
}

func (Income) TableName() string {
	return "incomes"
}
