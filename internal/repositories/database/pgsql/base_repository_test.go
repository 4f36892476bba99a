package pgsql

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/openbooks/general_ledger_app/internal/apperrors"
)

func TestTranslateConstraint(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "foreign key violation",
			in:   &pgconn.PgError{Code: pgForeignKeyViolation},
			want: apperrors.ErrReferentialConstraint,
		},
		{
			name: "unique violation",
			in:   &pgconn.PgError{Code: pgUniqueViolation},
			want: apperrors.ErrDuplicate,
		},
		{
			name: "serialization failure",
			in:   &pgconn.PgError{Code: pgSerializationFailure},
			want: apperrors.ErrConflict,
		},
		{
			name: "deadlock",
			in:   &pgconn.PgError{Code: pgDeadlockDetected},
			want: apperrors.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateConstraint(tt.in), tt.want)
		})
	}
}

func TestTranslateConstraint_PassThrough(t *testing.T) {
	other := errors.New("connection reset")
	assert.Equal(t, other, translateConstraint(other))

	// Unmapped Postgres errors keep their original identity.
	notNull := &pgconn.PgError{Code: "23502"}
	assert.Equal(t, error(notNull), translateConstraint(notNull))
}
