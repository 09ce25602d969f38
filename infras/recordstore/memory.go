package recordstore

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

type memoryTable struct {
	rows   map[int64]Record
	nextID int64
}

// Memory keeps every table in process. It backs the demo mode and tests.
type Memory struct {
	mu       sync.RWMutex
	tables   map[string]*memoryTable
	required map[string][]string
}

type MemoryOption func(*Memory)

// WithRequiredFields makes Create reject records of table that lack any of
// fields, the way a schema with NOT NULL columns would.
func WithRequiredFields(table string, fields ...string) MemoryOption {
	return func(m *Memory) {
		m.required[table] = append(m.required[table], fields...)
	}
}

func NewMemory(opts ...MemoryOption) *Memory {
	memory := &Memory{
		tables:   map[string]*memoryTable{},
		required: map[string][]string{},
	}

	for _, opt := range opts {
		opt(memory)
	}

	return memory
}

func (t *memoryTable) rowsOrEmpty() map[int64]Record {
	if t == nil {
		return nil
	}

	return t.rows
}

func (m *Memory) table(name string) *memoryTable {
	tbl, ok := m.tables[name]
	if !ok {
		tbl = &memoryTable{rows: map[int64]Record{}}
		m.tables[name] = tbl
	}

	return tbl
}

func (m *Memory) Fetch(_ context.Context, table string, query Query) ([]Record, error) {
	if err := validateQuery(table, query); err != nil {
		return nil, err
	}

	m.mu.RLock()
	matched := m.match(table, query.Where)
	m.mu.RUnlock()

	sortRecords(matched, query.Params)

	offset := query.Params.Offset()
	if offset >= len(matched) {
		return []Record{}, nil
	}

	matched = matched[offset:]

	if query.Params.Paginated() && query.Params.Limit < len(matched) {
		matched = matched[:query.Params.Limit]
	}

	records := make([]Record, len(matched))
	for idx, record := range matched {
		records[idx] = project(record, query.Fields)
	}

	return records, nil
}

func (m *Memory) Count(_ context.Context, table string, where dto.FilterGroup) (int, error) {
	if err := validateQuery(table, Query{Where: where}); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.match(table, where)), nil
}

func (m *Memory) Get(_ context.Context, table string, id int64, fields ...string) (Record, error) {
	if err := validateIdentifiers(append([]string{table}, fields...)...); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.tables[table].rowsOrEmpty()[id]
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}

	return project(record, fields), nil
}

func (m *Memory) Create(_ context.Context, table string, records ...Record) ([]Result, error) {
	if err := validateIdentifiers(table); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tbl := m.table(table)
	results := make([]Result, 0, len(records))

	for _, record := range records {
		if missing := m.missingField(table, record); missing != constant.Empty {
			results = append(results, failed("%s is required", missing))

			continue
		}

		tbl.nextID++

		stored := record.Clone()
		stored[constant.FieldID] = tbl.nextID
		tbl.rows[tbl.nextID] = stored

		results = append(results, succeeded(stored.Clone()))
	}

	return results, nil
}

func (m *Memory) Update(_ context.Context, table string, records ...Record) ([]Result, error) {
	if err := validateIdentifiers(table); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tbl := m.table(table)
	results := make([]Result, 0, len(records))

	for _, record := range records {
		id, ok := record.ID()
		if !ok {
			results = append(results, failed("%s", ErrMissingID))

			continue
		}

		stored, ok := tbl.rows[id]
		if !ok {
			results = append(results, failed("%s %d not found", table, id))

			continue
		}

		for key, value := range record {
			stored[key] = value
		}

		stored[constant.FieldID] = id

		results = append(results, succeeded(stored.Clone()))
	}

	return results, nil
}

func (m *Memory) Delete(_ context.Context, table string, ids ...int64) ([]Result, error) {
	if err := validateIdentifiers(table); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tbl := m.table(table)
	results := make([]Result, 0, len(ids))

	for _, id := range ids {
		if _, ok := tbl.rows[id]; !ok {
			results = append(results, failed("%s %d not found", table, id))

			continue
		}

		delete(tbl.rows, id)

		results = append(results, succeeded(Record{constant.FieldID: id}))
	}

	return results, nil
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) missingField(table string, record Record) string {
	for _, field := range m.required[table] {
		value, ok := record[field]
		if !ok || value == nil {
			return field
		}

		if str, isString := value.(string); isString && strings.TrimSpace(str) == constant.Empty {
			return field
		}
	}

	return constant.Empty
}

// match must be called with the read lock held. It returns copies so the
// caller can keep them after unlocking.
func (m *Memory) match(table string, where dto.FilterGroup) []Record {
	matched := []Record{}

	for _, record := range m.tables[table].rowsOrEmpty() {
		if matchGroup(record, where) {
			matched = append(matched, record.Clone())
		}
	}

	return matched
}

func matchGroup(record Record, group dto.FilterGroup) bool {
	if group.IsEmpty() {
		return true
	}

	isOr := group.JoinOperator() == dto.FilterGroupOperatorOr

	for _, item := range group.Filters {
		var ok bool

		switch filter := item.(type) {
		case dto.Filter:
			ok = matchFilter(record, filter)
		case dto.FilterGroup:
			ok = matchGroup(record, filter)
		default:
			continue
		}

		if isOr && ok {
			return true
		}

		if !isOr && !ok {
			return false
		}
	}

	return !isOr
}

func matchFilter(record Record, filter dto.Filter) bool {
	value := record[filter.Field]

	switch filter.Operator {
	case dto.FilterOperatorEq:
		return equalValues(value, filter.Value)
	case dto.FilterOperatorNotEq:
		return !equalValues(value, filter.Value)
	case dto.FilterOperatorLike:
		if value == nil {
			return false
		}

		needle := strings.ToLower(fmt.Sprint(filter.Value))

		return strings.Contains(strings.ToLower(fmt.Sprint(value)), needle)
	case dto.FilterOperatorIn:
		candidates := reflect.ValueOf(filter.Value)
		if candidates.Kind() != reflect.Slice && candidates.Kind() != reflect.Array {
			return equalValues(value, filter.Value)
		}

		for idx := range candidates.Len() {
			if equalValues(value, candidates.Index(idx).Interface()) {
				return true
			}
		}

		return false
	case dto.FilterOperatorLessEq:
		order, ok := compareValues(value, filter.Value)

		return ok && order <= 0
	case dto.FilterOperatorGreaterEq:
		order, ok := compareValues(value, filter.Value)

		return ok && order >= 0
	case dto.FilterIsNull:
		return value == nil
	case dto.FilterIsNotNull:
		return value != nil
	default:
		return false
	}
}

func equalValues(left, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}

	if leftBool, ok := left.(bool); ok {
		rightBool, isBool := right.(bool)

		return isBool && leftBool == rightBool
	}

	order, ok := compareValues(left, right)

	return ok && order == 0
}

// compareValues orders two loosely typed values: numerically when both read
// as numbers, chronologically when either is a time, lexically otherwise.
func compareValues(left, right any) (int, bool) {
	if left == nil || right == nil {
		return 0, false
	}

	if isNumeric(left) || isNumeric(right) {
		leftNumber, leftOK := toFloat64(left)
		rightNumber, rightOK := toFloat64(right)

		if leftOK && rightOK {
			return cmp.Compare(leftNumber, rightNumber), true
		}
	}

	_, leftIsTime := left.(time.Time)
	_, rightIsTime := right.(time.Time)

	if leftIsTime || rightIsTime {
		leftTime, leftOK := toTime(left)
		rightTime, rightOK := toTime(right)

		if leftOK && rightOK {
			return leftTime.Compare(rightTime), true
		}
	}

	return strings.Compare(fmt.Sprint(left), fmt.Sprint(right)), true
}

func sortRecords(records []Record, params dto.QueryParams) {
	sortBy := params.SortBy
	if sortBy == constant.Empty {
		sortBy = constant.FieldID
	}

	descending := params.SortBy != constant.Empty && params.SortDir == dto.SortDirDesc

	slices.SortStableFunc(records, func(a, b Record) int {
		order, _ := compareValues(a[sortBy], b[sortBy])
		if order == 0 && sortBy != constant.FieldID {
			order = cmp.Compare(a.Int64(constant.FieldID), b.Int64(constant.FieldID))
		}

		if descending {
			return -order
		}

		return order
	})
}

func project(record Record, fields []string) Record {
	if len(fields) == 0 {
		return record.Clone()
	}

	projected := Record{constant.FieldID: record[constant.FieldID]}
	for _, field := range fields {
		if value, ok := record[field]; ok {
			projected[field] = value
		}
	}

	return projected
}
