package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// 23505 = unique_violation
const pgUniqueViolation = "23505"

func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return false
}
