package repository

import (
	"errors"

	"github.com/jackc/pgconn"
)

var (
	ErrObjectNotFound = errors.New("not found")

	// ErrStatusConflict means a conditional status update matched no row:
	// the record moved out of the expected status between read and write.
	ErrStatusConflict = errors.New("status changed concurrently")

	// ErrSchemaNotProvisioned maps undefined_table so callers can show a
	// setup notice instead of a generic failure.
	ErrSchemaNotProvisioned = errors.New("schema not provisioned")
)

const undefinedTableCode = "42P01"

// TranslateError converts driver-level errors into the package sentinels
// where a distinct recovery path exists.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return ErrSchemaNotProvisioned
	}
	return err
}
