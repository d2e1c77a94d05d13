package services

import (
	"testing"
	"time"

	"salonbook/internal/testutil"
)

func TestDashboardSnapshot(t *testing.T) {
	// A fixed mid-month date keeps the week window inside one month.
	asOf := testutil.Date(2025, time.August, 20)

	t.Run("revenue_sums", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)

		testutil.CreateTestManualIncome(t, db, asOf, 2500)                   // today
		testutil.CreateTestManualIncome(t, db, asOf, 1000)                   // today
		testutil.CreateTestManualIncome(t, db, asOf.AddDate(0, 0, -3), 500)  // this week
		testutil.CreateTestManualIncome(t, db, asOf.AddDate(0, 0, -6), 200)  // window edge, still this week
		testutil.CreateTestManualIncome(t, db, asOf.AddDate(0, 0, -7), 9000) // outside the week, same month
		testutil.CreateTestManualIncome(t, db, asOf.AddDate(0, -1, 0), 7777) // previous month

		snapshot, err := svc.Snapshot(asOf)
		testutil.AssertNoError(t, err)

		if snapshot.TodayCents != 3500 {
			t.Errorf("expected today sum 3500, got %d", snapshot.TodayCents)
		}
		if snapshot.WeekCents != 4200 {
			t.Errorf("expected week sum 4200, got %d", snapshot.WeekCents)
		}
		if snapshot.MonthCents != 13200 {
			t.Errorf("expected month sum 13200, got %d", snapshot.MonthCents)
		}
	})

	t.Run("appointment_lists_ordered_by_time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)

		second := testutil.CreateTestAppointment(t, db, asOf, "09:30")
		first := testutil.CreateTestAppointment(t, db, asOf, "09:00")
		tomorrowOnly := testutil.CreateTestAppointment(t, db, asOf.AddDate(0, 0, 1), "08:00")
		testutil.CreateTestAppointment(t, db, asOf.AddDate(0, 0, 2), "08:00") // out of view

		snapshot, err := svc.Snapshot(asOf)
		testutil.AssertNoError(t, err)

		if len(snapshot.TodayAppointments) != 2 {
			t.Fatalf("expected 2 appointments today, got %d", len(snapshot.TodayAppointments))
		}
		if snapshot.TodayAppointments[0].ID != first.ID || snapshot.TodayAppointments[1].ID != second.ID {
			t.Errorf("today's appointments out of order: got [%d %d], want [%d %d]",
				snapshot.TodayAppointments[0].ID, snapshot.TodayAppointments[1].ID, first.ID, second.ID)
		}

		if len(snapshot.TomorrowAppointments) != 1 || snapshot.TomorrowAppointments[0].ID != tomorrowOnly.ID {
			t.Errorf("expected only appointment %d tomorrow, got %v", tomorrowOnly.ID, snapshot.TomorrowAppointments)
		}
	})

	t.Run("includes_appointment_derived_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		appointmentSvc := NewAppointmentService(db)

		day := testutil.Today()
		_, err := appointmentSvc.ScheduleAppointment("Ana", day, "10:00", "Manicure", priceOf(2500))
		testutil.AssertNoError(t, err)

		snapshot, err := svc.Snapshot(day)
		testutil.AssertNoError(t, err)
		if snapshot.TodayCents != 2500 {
			t.Errorf("expected today's revenue to include the derived income, got %d", snapshot.TodayCents)
		}
	})

	t.Run("read_is_idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)

		testutil.CreateTestManualIncome(t, db, asOf, 2500)
		testutil.CreateTestAppointment(t, db, asOf, "11:00")

		first, err := svc.Snapshot(asOf)
		testutil.AssertNoError(t, err)
		second, err := svc.Snapshot(asOf)
		testutil.AssertNoError(t, err)

		if first.TodayCents != second.TodayCents ||
			first.WeekCents != second.WeekCents ||
			first.MonthCents != second.MonthCents {
			t.Errorf("snapshots differ with no intervening writes: %+v vs %+v", first, second)
		}
		if len(first.TodayAppointments) != len(second.TodayAppointments) {
			t.Errorf("appointment lists differ with no intervening writes")
		}
	})

	t.Run("empty_database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)

		snapshot, err := svc.Snapshot(asOf)
		testutil.AssertNoError(t, err)
		if snapshot.TodayCents != 0 || snapshot.WeekCents != 0 || snapshot.MonthCents != 0 {
			t.Errorf("expected zero sums on empty database, got %+v", snapshot)
		}
	})
}
