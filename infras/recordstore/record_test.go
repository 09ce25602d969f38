package recordstore_test

import (
	"encoding/json"
	"testing"
	"time"

	"frontdesk/infras/recordstore"

	"github.com/stretchr/testify/assert"
)

func TestRecord_NumericCoercion(t *testing.T) {
	record := recordstore.Record{
		"json_int":    json.Number("42"),
		"json_float":  json.Number("12.75"),
		"float":       float64(3),
		"string_int":  " 17 ",
		"bytes_float": []byte("99.90"),
		"int32":       int32(5),
		"bogus":       "n/a",
	}

	assert.Equal(t, int64(42), record.Int64("json_int"))
	assert.InDelta(t, 12.75, record.Float64("json_float"), 0.0001)
	assert.Equal(t, int64(3), record.Int64("float"))
	assert.Equal(t, 17, record.Int("string_int"))
	assert.InDelta(t, 99.9, record.Float64("bytes_float"), 0.0001)
	assert.Equal(t, int64(5), record.Int64("int32"))
	assert.Equal(t, int64(0), record.Int64("bogus"))
	assert.Equal(t, int64(0), record.Int64("missing"))
}

func TestRecord_ID(t *testing.T) {
	id, ok := recordstore.Record{"id": json.Number("8")}.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(8), id)

	_, ok = recordstore.Record{"id": nil}.ID()
	assert.False(t, ok)

	_, ok = recordstore.Record{"id": 0}.ID()
	assert.False(t, ok)
}

func TestRecord_StringAndBool(t *testing.T) {
	record := recordstore.Record{
		"text":   "hello",
		"number": json.Number("101"),
		"int":    int64(7),
		"flag":   "true",
		"one":    1,
		"zero":   json.Number("0"),
		"yes":    true,
	}

	assert.Equal(t, "hello", record.String("text"))
	assert.Equal(t, "101", record.String("number"))
	assert.Equal(t, "7", record.String("int"))
	assert.Equal(t, "", record.String("missing"))
	assert.True(t, record.Bool("flag"))
	assert.True(t, record.Bool("one"))
	assert.False(t, record.Bool("zero"))
	assert.True(t, record.Bool("yes"))
	assert.False(t, record.Bool("missing"))
}

func TestRecord_Time(t *testing.T) {
	record := recordstore.Record{
		"rfc3339": "2024-01-02T10:30:00Z",
		"nano":    "2024-01-02T10:30:00.123456+07:00",
		"sql":     "2024-01-02 10:30:00",
		"date":    "2024-01-02",
		"native":  time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		"junk":    "yesterday",
	}

	expected := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)

	assert.True(t, expected.Equal(record.Time("rfc3339")))
	assert.True(t, expected.Equal(record.Time("sql")))
	assert.True(t, expected.Equal(record.Time("native")))
	assert.Equal(t, 3, record.Time("nano").UTC().Hour())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), record.Time("date"))
	assert.True(t, record.Time("junk").IsZero())
}

func TestRecord_Date(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	record := recordstore.Record{
		"sql_date":  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"text_date": "2024-03-15",
		"timestamp": "2024-03-15T00:00:00Z",
		"junk":      "soon",
	}

	expected := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	assert.Equal(t, expected, record.Date("sql_date", loc))
	assert.Equal(t, expected, record.Date("text_date", loc))
	assert.Equal(t, expected, record.Date("timestamp", loc))
	assert.True(t, record.Date("junk", loc).IsZero())
}

func TestRecord_Int64List(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected []int64
	}{
		{name: "comma delimited", value: "1,2, 3", expected: []int64{1, 2, 3}},
		{name: "blank entries skipped", value: ",4,,x,5,", expected: []int64{4, 5}},
		{name: "empty", value: "", expected: []int64{}},
		{name: "missing", value: nil, expected: []int64{}},
		{name: "json array", value: []any{json.Number("6"), float64(7)}, expected: []int64{6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := recordstore.Record{"booking_history": tt.value}

			assert.Equal(t, tt.expected, record.Int64List("booking_history"))
		})
	}

	assert.Equal(t, "1,2,3", recordstore.JoinInt64List([]int64{1, 2, 3}))
	assert.Equal(t, "", recordstore.JoinInt64List(nil))
}
