package models

import "time"

// Appointment is a scheduled service instance for a client. A priced
// appointment owns exactly one appointment-derived income record, referenced
// by IncomeID; an unpriced appointment has no income reference.
type Appointment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Client     string    `gorm:"size:100;not null" json:"client"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	Time       string    `gorm:"size:5;not null" json:"time"`
	Service    string    `gorm:"size:100" json:"service,omitempty"`
	PriceCents *int64    `json:"price_cents,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	IncomeID *uint   `gorm:"uniqueIndex" json:"income_id,omitempty"`
	Income   *Income `gorm:"foreignKey:IncomeID" json:"income,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
