package postgres

import (
	"database/sql"
	"errors"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// uniqueConstraintFields maps unique index names to the API field they guard.
var uniqueConstraintFields = map[string]string{
	"users_email_key":           "email",
	"users_whatsapp_number_key": "whatsappNumber",
}

var documentJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// uniqueViolationField reports the field behind a unique index violation.
func uniqueViolationField(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return "", false
	}
	if field, ok := uniqueConstraintFields[pqErr.Constraint]; ok {
		return field, true
	}
	return pqErr.Constraint, true
}

func encodeDocument(value any) (string, error) {
	raw, err := documentJSON.Marshal(value)
	if err != nil {
		return "", crerr.Wrap(err, "encode jsonb document")
	}
	return string(raw), nil
}

func decodeDocument(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := documentJSON.Unmarshal(raw, out); err != nil {
		return crerr.Wrap(err, "decode jsonb document")
	}
	return nil
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

func toNullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

// affectedOne converts a zero row count into notFound.
func affectedOne(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "read affected rows")
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
