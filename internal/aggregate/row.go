package aggregate

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Row is one flat record of a SQL result set, keyed by column name.
// Driver-level representations (numeric 0/1 flags, JSON text columns) are
// normalized through the typed accessors below.
type Row map[string]interface{}

// ScanRows drains a *sql.Rows into a slice of Rows, preserving result order.
// []byte column values are copied to strings because the driver may reuse
// the backing buffer between calls to Next.
func ScanRows(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// IsNull reports whether the column is absent or holds SQL NULL
func (r Row) IsNull(key string) bool {
	v, ok := r[key]
	return !ok || v == nil
}

// String returns the column as a string, or "" for NULL
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the column as an int, or 0 for NULL
func (r Row) Int(key string) int {
	return int(r.Int64(key))
}

// Int64 returns the column as an int64, or 0 for NULL
func (r Row) Int64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Float64 returns the column as a float64, or 0 for NULL
func (r Row) Float64(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Bool01 normalizes a storage-level boolean-like column (native boolean,
// numeric 0/1, or textual "0"/"1"/"t"/"true") into a bool. NULL is false.
func (r Row) Bool01(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int32:
		return v != 0
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v == "1" || v == "t" || v == "true"
	default:
		return false
	}
}

// Time returns the column as a time.Time, zero value for NULL
func (r Row) Time(key string) time.Time {
	if v, ok := r[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

// UUID parses the column as a UUID. A missing or malformed value on a
// parent-id column is a programming error in the query, not a recoverable
// condition, so the caller is expected to abort.
func (r Row) UUID(key string) (uuid.UUID, error) {
	switch v := r[key].(type) {
	case string:
		return uuid.Parse(v)
	case [16]byte:
		return uuid.UUID(v), nil
	case nil:
		return uuid.Nil, fmt.Errorf("column %q is null", key)
	default:
		return uuid.Nil, fmt.Errorf("column %q is not a uuid: %T", key, v)
	}
}

// JSONObject parses a JSON-text column into a map. A malformed value is
// logged and replaced with an empty object; it never fails the response.
func (r Row) JSONObject(key string, log *logrus.Logger) map[string]interface{} {
	raw := r[key]
	if raw == nil {
		return map[string]interface{}{}
	}

	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return map[string]interface{}{}
	}
	if text == "" {
		return map[string]interface{}{}
	}

	parsed := map[string]interface{}{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		if log != nil {
			log.Warnf("Failed to parse JSON column %q: %v", key, err)
		}
		return map[string]interface{}{}
	}
	return parsed
}
