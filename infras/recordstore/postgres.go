package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/logger"

	"github.com/jmoiron/sqlx"
)

const (
	argLimit  = "page_limit"
	argOffset = "page_offset"
	argID     = "record_id"
)

// Postgres maps the record store onto plain tables, one per entity, with a
// BIGSERIAL id column. Reads go to the read pool and writes to the write pool.
type Postgres struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, ot otel.Otel) *Postgres {
	return &Postgres{
		db:   db,
		otel: ot,
	}
}

func (p *Postgres) Fetch(ctx context.Context, table string, query Query) (records []Record, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Fetch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTableAttributeKey, table)

	if err = validateQuery(table, query); err != nil {
		return nil, err
	}

	where, args := buildWhereClause(query.Where)

	var ordering, pagination string

	if query.Params.SortBy != constant.Empty {
		direction := dto.SortDirAsc
		if query.Params.SortDir == dto.SortDirDesc {
			direction = dto.SortDirDesc
		}

		ordering = fmt.Sprintf("ORDER BY %s %s", query.Params.SortBy, direction)
	} else {
		ordering = "ORDER BY " + constant.FieldID
	}

	if query.Params.Paginated() {
		args[argLimit] = query.Params.Limit
		args[argOffset] = query.Params.Offset()

		pagination = fmt.Sprintf("LIMIT :%s OFFSET :%s", argLimit, argOffset)
	}

	statement := fmt.Sprintf("SELECT %s FROM %s %s %s %s", selectColumns(query.Fields), table, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	records, err = p.queryRecords(ctx, p.db.Read, statement, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return []Record{}, fmt.Errorf("failed to fetch %s: %w", table, err)
	}

	return records, nil
}

func (p *Postgres) Count(ctx context.Context, table string, where dto.FilterGroup) (count int, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateQuery(table, Query{Where: where}); err != nil {
		return 0, err
	}

	clause, args := buildWhereClause(where)
	statement := fmt.Sprintf("SELECT COUNT(%s) FROM %s %s", constant.FieldID, table, clause)
	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	prepare, err := p.db.Read.PrepareNamedContext(ctx, statement)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", table, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return count, nil
}

func (p *Postgres) Get(ctx context.Context, table string, id int64, fields ...string) (record Record, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateIdentifiers(append([]string{table}, fields...)...); err != nil {
		return nil, err
	}

	statement := fmt.Sprintf("SELECT %s FROM %s WHERE %s = :%s", selectColumns(fields), table, constant.FieldID, argID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	records, err := p.queryRecords(ctx, p.db.Read, statement, map[string]any{argID: id})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get %s %d: %w", table, id, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}

	return records[0], nil
}

// Create inserts each record on its own so one rejected row does not abort
// the rest of the batch.
func (p *Postgres) Create(ctx context.Context, table string, records ...Record) (results []Result, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateIdentifiers(table); err != nil {
		return nil, err
	}

	results = make([]Result, 0, len(records))

	for _, record := range records {
		values := record.Clone()
		delete(values, constant.FieldID)

		columns := slices.Sorted(maps.Keys(values))
		if err := validateIdentifiers(columns...); err != nil {
			results = append(results, failed("%s", err))

			continue
		}

		placeholders := make([]string, len(columns))
		for idx, col := range columns {
			placeholders[idx] = ":" + col
		}

		statement := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
			table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
		scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

		inserted, err := p.queryRecords(ctx, p.db.Write, statement, map[string]any(values))
		if err != nil {
			logger.ErrorWithStack(err)

			results = append(results, failed("failed to create %s: %v", table, err))

			continue
		}

		if len(inserted) == 0 {
			results = append(results, failed("failed to create %s: no row returned", table))

			continue
		}

		results = append(results, succeeded(inserted[0]))
	}

	return results, nil
}

func (p *Postgres) Update(ctx context.Context, table string, records ...Record) (results []Result, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateIdentifiers(table); err != nil {
		return nil, err
	}

	results = make([]Result, 0, len(records))

	for _, record := range records {
		id, ok := record.ID()
		if !ok {
			results = append(results, failed("%s", ErrMissingID))

			continue
		}

		values := record.Clone()
		delete(values, constant.FieldID)

		columns := slices.Sorted(maps.Keys(values))
		if err := validateIdentifiers(columns...); err != nil {
			results = append(results, failed("%s", err))

			continue
		}

		if len(columns) == 0 {
			current, err := p.Get(ctx, table, id)
			if err != nil {
				results = append(results, failed("%s", err))

				continue
			}

			results = append(results, succeeded(current))

			continue
		}

		assignments := make([]string, len(columns))
		for idx, col := range columns {
			assignments[idx] = fmt.Sprintf("%s = :%s", col, col)
		}

		values[argID] = id

		statement := fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s RETURNING *",
			table, strings.Join(assignments, ", "), constant.FieldID, argID)
		scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

		updated, err := p.queryRecords(ctx, p.db.Write, statement, map[string]any(values))
		if err != nil {
			logger.ErrorWithStack(err)

			results = append(results, failed("failed to update %s %d: %v", table, id, err))

			continue
		}

		if len(updated) == 0 {
			results = append(results, failed("%s %d not found", table, id))

			continue
		}

		results = append(results, succeeded(updated[0]))
	}

	return results, nil
}

func (p *Postgres) Delete(ctx context.Context, table string, ids ...int64) (results []Result, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".postgres.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateIdentifiers(table); err != nil {
		return nil, err
	}

	statement := fmt.Sprintf("DELETE FROM %s WHERE %s = :%s", table, constant.FieldID, argID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	results = make([]Result, 0, len(ids))

	for _, id := range ids {
		res, err := p.db.Write.NamedExecContext(ctx, statement, map[string]any{argID: id})
		if err != nil {
			logger.ErrorWithStack(err)

			results = append(results, failed("failed to delete %s %d: %v", table, id, err))

			continue
		}

		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			results = append(results, failed("%s %d not found", table, id))

			continue
		}

		results = append(results, succeeded(Record{constant.FieldID: id}))
	}

	return results, nil
}

func (p *Postgres) Close() error {
	return p.db.Close() //nolint:wrapcheck
}

func (p *Postgres) queryRecords(ctx context.Context, db *sqlx.DB, statement string, args map[string]any) ([]Record, error) {
	prepare, err := db.PrepareNamedContext(ctx, statement)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer prepare.Close()

	rows, err := prepare.QueryxContext(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	records := []Record{}

	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		records = append(records, normalizeRow(row))
	}

	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return records, nil
}

// normalizeRow turns driver byte slices (NUMERIC, for one) into strings so
// they coerce like any other textual value.
func normalizeRow(row map[string]any) Record {
	record := make(Record, len(row))

	for key, value := range row {
		if raw, ok := value.([]byte); ok {
			record[key] = string(raw)

			continue
		}

		record[key] = value
	}

	return record
}

func buildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == constant.Empty {
		return where, map[string]any{}
	}

	return "WHERE " + where, args
}

func selectColumns(fields []string) string {
	if len(fields) == 0 {
		return constant.Asterix
	}

	columns := []string{constant.FieldID}
	for _, field := range fields {
		if field != constant.FieldID {
			columns = append(columns, field)
		}
	}

	return strings.Join(columns, ", ")
}
