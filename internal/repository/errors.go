package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// pgForeignKeyViolation is the SQLSTATE for FK constraint failures.
const pgForeignKeyViolation = "23503"
