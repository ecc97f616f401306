package postgres

import (
	"bytes"
	"database/sql"
	"errors"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// decodeJSONB unmarshals a jsonb column. NULL, empty and 'null' leave out
// untouched.
func decodeJSONB(raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return crerr.Wrap(err, "decode jsonb")
	}
	return nil
}

// encodeJSONB returns text so lib/pq sends it as a jsonb literal rather than
// bytea.
func encodeJSONB(value any) (string, error) {
	encoded, err := sonic.MarshalString(value)
	if err != nil {
		return "", crerr.Wrap(err, "encode jsonb")
	}
	return encoded, nil
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func nullInt64Value(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}

func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullableInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}
