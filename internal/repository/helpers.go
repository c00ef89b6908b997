package repository

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the postgres error code for a unique index breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
