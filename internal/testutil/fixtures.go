package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"salonbook/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a calendar date at midnight UTC, the normalized form used
// throughout the services.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return Date(y, m, d)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     fmt.Sprintf("user%d", nextID()),
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestManualIncome creates a manual income record on the given date.
func CreateTestManualIncome(t *testing.T, db *gorm.DB, date time.Time, amountCents int64) *models.Income {
	t.Helper()

	income := &models.Income{
		Date:        date,
		AmountCents: amountCents,
		Description: fmt.Sprintf("Test income %d", nextID()),
		Category:    models.IncomeCategoryManual,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestAppointment creates an unpriced appointment on the given date.
func CreateTestAppointment(t *testing.T, db *gorm.DB, date time.Time, timeOfDay string) *models.Appointment {
	t.Helper()

	appointment := &models.Appointment{
		Client: fmt.Sprintf("Client %d", nextID()),
		Date:   date,
		Time:   timeOfDay,
	}
	if err := db.Create(appointment).Error; err != nil {
		t.Fatalf("failed to create test appointment: %v", err)
	}
	return appointment
}
