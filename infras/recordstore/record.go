package recordstore

import (
	"encoding/json"
	"maps"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"frontdesk/shared/constant"
)

// Record is one row as the store sees it: column name to loosely typed value.
// Values arrive as JSON numbers, database scalars or strings depending on the
// driver, so typed access goes through the coercing getters below.
type Record map[string]any

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
	constant.DateOnlyFormat,
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// ID returns the store-assigned identifier.
func (r Record) ID() (int64, bool) {
	value, ok := r[constant.FieldID]
	if !ok || value == nil {
		return 0, false
	}

	id, ok := toInt64(value)

	return id, ok && id > 0
}

func (r Record) Has(key string) bool {
	_, ok := r[key]

	return ok
}

func (r Record) Int64(key string) int64 {
	value, _ := toInt64(r[key])

	return value
}

func (r Record) Int(key string) int {
	return int(r.Int64(key))
}

func (r Record) Float64(key string) float64 {
	value, _ := toFloat64(r[key])

	return value
}

func (r Record) String(key string) string {
	switch value := r[key].(type) {
	case nil:
		return constant.Empty
	case string:
		return value
	case []byte:
		return string(value)
	case json.Number:
		return value.String()
	case time.Time:
		return value.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		if number, ok := toInt64(value); ok {
			return strconv.FormatInt(number, 10)
		}

		return constant.Empty
	}
}

// Bool accepts booleans, "true"/"false"-like strings and 0/1 numbers.
func (r Record) Bool(key string) bool {
	switch value := r[key].(type) {
	case bool:
		return value
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))

		return err == nil && parsed
	case []byte:
		parsed, err := strconv.ParseBool(string(value))

		return err == nil && parsed
	default:
		number, ok := toFloat64(value)

		return ok && number != 0
	}
}

// Time parses ISO-8601 timestamps. Unparsable values yield the zero time.
func (r Record) Time(key string) time.Time {
	value, _ := toTime(r[key])

	return value
}

// Date returns the calendar date stored under key as midnight in loc. Date
// columns come back from SQL drivers as UTC midnight, so the year, month and
// day are taken from the value itself rather than converted.
func (r Record) Date(key string, loc *time.Location) time.Time {
	switch value := r[key].(type) {
	case time.Time:
		return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, loc)
	default:
		raw := r.String(key)
		if len(raw) >= len(constant.DateOnlyFormat) {
			raw = raw[:len(constant.DateOnlyFormat)]
		}

		parsed, err := time.ParseInLocation(constant.DateOnlyFormat, raw, loc)
		if err != nil {
			return time.Time{}
		}

		return parsed
	}
}

// Int64List reads a comma-delimited list of integers. Blank and malformed
// entries are skipped.
func (r Record) Int64List(key string) []int64 {
	list := []int64{}

	switch value := r[key].(type) {
	case []any:
		for _, item := range value {
			if number, ok := toInt64(item); ok {
				list = append(list, number)
			}
		}

		return list
	case []int64:
		return append(list, value...)
	}

	for _, part := range strings.Split(r.String(key), constant.Comma) {
		number, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}

		list = append(list, number)
	}

	return list
}

// JoinInt64List is the inverse of Int64List.
func JoinInt64List(values []int64) string {
	parts := make([]string, len(values))
	for idx, value := range values {
		parts[idx] = strconv.FormatInt(value, 10)
	}

	return strings.Join(parts, constant.Comma)
}

func toInt64(value any) (int64, bool) {
	switch number := value.(type) {
	case int64:
		return number, true
	case json.Number:
		if parsed, err := number.Int64(); err == nil {
			return parsed, true
		}

		parsed, err := number.Float64()

		return int64(parsed), err == nil
	case string:
		return parseInt64(number)
	case []byte:
		return parseInt64(string(number))
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflected.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(reflected.Uint()), true //nolint:gosec
	case reflect.Float32, reflect.Float64:
		return int64(math.Round(reflected.Float())), true
	default:
		return 0, false
	}
}

func parseInt64(value string) (int64, bool) {
	value = strings.TrimSpace(value)

	if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
		return parsed, true
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return int64(math.Round(parsed)), true
}

func toFloat64(value any) (float64, bool) {
	switch number := value.(type) {
	case float64:
		return number, true
	case json.Number:
		parsed, err := number.Float64()

		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(number), 64)

		return parsed, err == nil
	case []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(number)), 64)

		return parsed, err == nil
	case bool, nil:
		return 0, false
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(reflected.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(reflected.Uint()), true
	case reflect.Float32:
		return reflected.Float(), true
	default:
		return 0, false
	}
}

func toTime(value any) (time.Time, bool) {
	var raw string

	switch moment := value.(type) {
	case time.Time:
		return moment, true
	case *time.Time:
		if moment == nil {
			return time.Time{}, false
		}

		return *moment, true
	case string:
		raw = moment
	case []byte:
		raw = string(moment)
	default:
		return time.Time{}, false
	}

	raw = strings.TrimSpace(raw)

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

func isNumeric(value any) bool {
	switch value.(type) {
	case json.Number:
		return true
	case bool, string, []byte, nil:
		return false
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
