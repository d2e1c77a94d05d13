package services

import (
	"testing"

	"salonbook/internal/models"
	"salonbook/internal/pagination"
	"salonbook/internal/testutil"

	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func priceOf(cents int64) *int64 {
	return &cents
}

func TestScheduleAppointment(t *testing.T) {
	t.Run("priced_creates_linked_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		appointment, err := svc.ScheduleAppointment("Ana", testutil.Today(), "10:00", "Manicure", priceOf(2500))
		testutil.AssertNoError(t, err)

		if appointment.IncomeID == nil {
			t.Fatal("expected priced appointment to reference an income")
		}

		var income models.Income
		if err := db.First(&income, *appointment.IncomeID).Error; err != nil {
			t.Fatalf("linked income should exist: %v", err)
		}
		if income.Category != models.IncomeCategoryAppointment {
			t.Errorf("expected category %q, got %q", models.IncomeCategoryAppointment, income.Category)
		}
		if income.AmountCents != 2500 {
			t.Errorf("expected income amount 2500, got %d", income.AmountCents)
		}
		if !income.Date.Equal(appointment.Date) {
			t.Errorf("income date %v should match appointment date %v", income.Date, appointment.Date)
		}
		if income.Description != "Appointment for Ana - Manicure" {
			t.Errorf("unexpected income description %q", income.Description)
		}
		if n := countRows(t, db, &models.Income{}); n != 1 {
			t.Errorf("expected exactly 1 income row, got %d", n)
		}
	})

	t.Run("unpriced_creates_no_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		appointment, err := svc.ScheduleAppointment("Ana", testutil.Today(), "10:00", "", nil)
		testutil.AssertNoError(t, err)

		if appointment.IncomeID != nil {
			t.Errorf("unpriced appointment should not reference an income, got %d", *appointment.IncomeID)
		}
		if n := countRows(t, db, &models.Income{}); n != 0 {
			t.Errorf("expected 0 income rows, got %d", n)
		}
	})

	t.Run("past_date_rejected_with_zero_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		yesterday := testutil.Today().AddDate(0, 0, -1)
		_, err := svc.ScheduleAppointment("Ana", yesterday, "10:00", "Manicure", priceOf(2500))
		testutil.AssertAppError(t, err, "PAST_APPOINTMENT")

		if n := countRows(t, db, &models.Appointment{}); n != 0 {
			t.Errorf("expected 0 appointment rows, got %d", n)
		}
		if n := countRows(t, db, &models.Income{}); n != 0 {
			t.Errorf("expected 0 income rows, got %d", n)
		}
	})

	t.Run("zero_price_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		_, err := svc.ScheduleAppointment("Ana", testutil.Today(), "10:00", "Manicure", priceOf(0))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_client_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		_, err := svc.ScheduleAppointment("  ", testutil.Today(), "10:00", "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_time_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		_, err := svc.ScheduleAppointment("Ana", testutil.Today(), "", "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("future_date_accepted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		nextWeek := testutil.Today().AddDate(0, 0, 7)
		appointment, err := svc.ScheduleAppointment("Ana", nextWeek, "15:30", "Pedicure", nil)
		testutil.AssertNoError(t, err)
		if !appointment.Date.Equal(nextWeek) {
			t.Errorf("expected date %v, got %v", nextWeek, appointment.Date)
		}
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("cascade_removes_linked_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		appointment, err := svc.ScheduleAppointment("Ana", testutil.Today(), "10:00", "Manicure", priceOf(2500))
		testutil.AssertNoError(t, err)
		incomeID := *appointment.IncomeID

		deleted, err := svc.DeleteAppointment(appointment.ID)
		testutil.AssertNoError(t, err)

		if deleted.RemovedIncomeCents == nil || *deleted.RemovedIncomeCents != 2500 {
			t.Errorf("expected removed income of 2500 cents, got %v", deleted.RemovedIncomeCents)
		}

		_, err = svc.GetAppointmentByID(appointment.ID)
		testutil.AssertAppError(t, err, "APPOINTMENT_NOT_FOUND")

		var income models.Income
		if err := db.First(&income, incomeID).Error; err == nil {
			t.Errorf("linked income %d should have been deleted", incomeID)
		}
		if n := countRows(t, db, &models.Appointment{}); n != 0 {
			t.Errorf("expected 0 appointment rows after cascade, got %d", n)
		}
		if n := countRows(t, db, &models.Income{}); n != 0 {
			t.Errorf("expected 0 income rows after cascade, got %d", n)
		}
	})

	t.Run("unpriced_reports_no_removed_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		appointment, err := svc.ScheduleAppointment("Ana", testutil.Today(), "10:00", "", nil)
		testutil.AssertNoError(t, err)

		deleted, err := svc.DeleteAppointment(appointment.ID)
		testutil.AssertNoError(t, err)
		if deleted.RemovedIncomeCents != nil {
			t.Errorf("expected no removed income, got %d", *deleted.RemovedIncomeCents)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		_, err := svc.DeleteAppointment(99999)
		testutil.AssertAppError(t, err, "APPOINTMENT_NOT_FOUND")
	})

	t.Run("manual_income_untouched_by_cascade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		manual := testutil.CreateTestManualIncome(t, db, testutil.Today(), 5000)
		appointment, err := svc.ScheduleAppointment("Ana", testutil.Today(), "10:00", "Manicure", priceOf(2500))
		testutil.AssertNoError(t, err)

		_, err = svc.DeleteAppointment(appointment.ID)
		testutil.AssertNoError(t, err)

		var income models.Income
		if err := db.First(&income, manual.ID).Error; err != nil {
			t.Errorf("manual income should survive appointment deletion: %v", err)
		}
	})
}

func TestListAppointments(t *testing.T) {
	t.Run("ordered_by_date_then_time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		day := testutil.Today()
		nextDay := day.AddDate(0, 0, 1)

		if _, err := svc.ScheduleAppointment("Late", nextDay, "08:00", "", nil); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.ScheduleAppointment("Second", day, "09:30", "", nil); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.ScheduleAppointment("First", day, "09:00", "", nil); err != nil {
			t.Fatal(err)
		}

		result, err := svc.ListAppointments(pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 3 {
			t.Fatalf("expected 3 appointments, got %d", result.TotalItems)
		}
		order := []string{"First", "Second", "Late"}
		for i, want := range order {
			if result.Data[i].Client != want {
				t.Errorf("position %d: expected %q, got %q", i, want, result.Data[i].Client)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAppointmentService(db)

		result, err := svc.ListAppointments(pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 0 || result.TotalItems != 0 {
			t.Errorf("expected empty result, got %d items", result.TotalItems)
		}
	})
}
