package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
		code int
	}{
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_transactions_sale"}, apperrors.ErrDuplicate, 409},
		{"foreign key violation", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrValidation, 400},
		{"check violation", &pgconn.PgError{Code: pgCheckViolation}, apperrors.ErrValidation, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapWriteError("insert failed", tt.err)
			assert.ErrorIs(t, err, tt.want)
			var appErr *apperrors.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tt.code, appErr.Code)
			}
		})
	}

	other := errors.New("connection reset")
	err := mapWriteError("insert failed", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}

func TestPageLimit(t *testing.T) {
	assert.Equal(t, defaultPageLimit, pageLimit(portsrepo.Page{}))
	assert.Equal(t, 5, pageLimit(portsrepo.Page{Limit: 5}))
}
