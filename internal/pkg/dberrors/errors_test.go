package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueViolation(pgErr) {
		t.Error("23505 should be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", pgErr)) {
		t.Error("wrapped unique violation not detected")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("plain error mistaken for a unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "community_members_unique"}

	if !IsDuplicateConstraintError(pgErr, "community_members_unique") {
		t.Error("matching constraint not detected")
	}
	if IsDuplicateConstraintError(pgErr, "users_email_key") {
		t.Error("constraint name should be matched exactly")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "messages_receiver_id_fkey"}

	if !IsForeignKeyViolation(pgErr) {
		t.Error("23503 should be a foreign key violation")
	}
	if !IsForeignKeyViolation(fmt.Errorf("insert failed: %w", pgErr)) {
		t.Error("wrapped foreign key violation not detected")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation mistaken for a foreign key violation")
	}
}
