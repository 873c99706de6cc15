package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isUniqueViolation reports whether err is a unique index violation, if
// constraint is given it must also match the violated index name.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != uniqueViolationCode {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

func encodeJSON[T any](value map[string]T) string {
	if len(value) == 0 {
		return "{}"
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

func decodeJSON[T any](raw string) map[string]T {
	raw = strings.TrimSpace(raw)
	out := make(map[string]T)
	if raw == "" {
		return out
	}
	if err := sonic.UnmarshalString(raw, &out); err != nil {
		return make(map[string]T)
	}
	return out
}
