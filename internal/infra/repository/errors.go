package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// normalizeLookupErr converts invalid_text_representation (22P02) into a
// record-not-found. The driver raises it when a caller sends a malformed
// uuid in the path, which is a miss, not a server fault.
func normalizeLookupErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return gorm.ErrRecordNotFound
	}
	return err
}
