package services

import (
	"testing"

	"salonbook/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("maria", "secret-password")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.PasswordHash == "secret-password" {
			t.Fatal("password must not be stored in plaintext")
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("maria", "secret-password")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("maria", "another-password")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("storage_failure_surfaces_internal_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db)

		// Close the connection so the duplicate pre-check query fails.
		testutil.TeardownTestDB(t, db)

		_, err := svc.CreateUser("maria", "secret-password")
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "secret-password")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("maria", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("correct_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("maria", "secret-password")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("maria", "secret-password")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("maria", "secret-password")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("maria", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("nobody", "whatever")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestEnsureAdminUser(t *testing.T) {
	t.Run("creates_on_empty_database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.EnsureAdminUser("admin", "admin123")
		testutil.AssertNoError(t, err)
		if !created {
			t.Fatal("expected bootstrap account to be created")
		}

		_, err = svc.AttemptLogin("admin", "admin123")
		testutil.AssertNoError(t, err)
	})

	t.Run("skips_when_users_exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		testutil.CreateTestUser(t, db)

		created, err := svc.EnsureAdminUser("admin", "admin123")
		testutil.AssertNoError(t, err)
		if created {
			t.Fatal("bootstrap account must not be created when users exist")
		}
	})
}

func TestRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user := testutil.CreateTestUser(t, db)

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "abc123" {
		t.Errorf("expected stored hash, got %q", hash)
	}

	err = svc.StoreRefreshTokenHash(99999, "abc123")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}
