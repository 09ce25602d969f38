package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"frontdesk/infras/otel"
	"frontdesk/infras/recordstore"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"

	"github.com/rs/zerolog/log"
)

// Entity is a typed record the gateway can write to the record store.
type Entity interface {
	ToRecord() recordstore.Record
	Validate() error
}

// Decoder maps a wire record back to its typed form.
type Decoder[T Entity] func(record recordstore.Record) T

// Gateway is the typed boundary between a domain and the record store.
//
// Reads return an empty, non-nil collection together with the error. Batch
// writes return every record that was written and, when some were not, a
// *recordstore.BatchError. The operator is notified once per failed call.
type Gateway[T Entity] struct {
	store    recordstore.Client
	notifier notify.Notifier
	otel     otel.Otel
	decode   Decoder[T]
	entity   string
	table    string
}

func NewGateway[T Entity](entity, table string, decode Decoder[T], store recordstore.Client, notifier notify.Notifier, otl otel.Otel) Gateway[T] {
	return Gateway[T]{
		store:    store,
		notifier: notifier,
		otel:     otl,
		decode:   decode,
		entity:   entity,
		table:    table,
	}
}

func (g *Gateway[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, g.entity, operation))
	scope.SetAttribute(constant.OtelTableAttributeKey, g.table)

	return ctx, scope
}

func (g *Gateway[T]) decodeAll(records []recordstore.Record) []T {
	models := make([]T, 0, len(records))

	for _, record := range records {
		models = append(models, g.decode(record))
	}

	return models
}

func (g *Gateway[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, fields ...string) (models []T, err error) {
	ctx, scope := g.scope(ctx, "GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := g.store.Fetch(ctx, g.table, recordstore.Query{Fields: fields, Where: filter, Params: params})
	if err != nil {
		log.Error().Err(err).Str("table", g.table).Msg("failed to fetch records")
		g.notifier.Error(ctx, g.entity, fmt.Sprintf("Failed to load %s", g.table))

		return []T{}, fmt.Errorf("failed to fetch %s: %w", g.table, err)
	}

	return g.decodeAll(records), nil
}

func (g *Gateway[T]) Count(ctx context.Context, filter dto.FilterGroup) (total int, err error) {
	ctx, scope := g.scope(ctx, "Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err = g.store.Count(ctx, g.table, filter)
	if err != nil {
		log.Error().Err(err).Str("table", g.table).Msg("failed to count records")
		g.notifier.Error(ctx, g.entity, fmt.Sprintf("Failed to load %s", g.table))

		return 0, fmt.Errorf("failed to count %s: %w", g.table, err)
	}

	return total, nil
}

// Get returns a failure.NotFound error when no record has the id.
func (g *Gateway[T]) Get(ctx context.Context, id int64, fields ...string) (model T, err error) {
	ctx, scope := g.scope(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := g.store.Get(ctx, g.table, id, fields...)
	if errors.Is(err, recordstore.ErrNotFound) {
		return model, failure.NotFound(g.entity + " not found") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("table", g.table).Int64("id", id).Msg("failed to get record")
		g.notifier.Error(ctx, g.entity, fmt.Sprintf("Failed to load %s", g.entity))

		return model, fmt.Errorf("failed to get %s: %w", g.entity, err)
	}

	return g.decode(record), nil
}

// Create validates each model before writing. Invalid models fail in place
// without reaching the store so result order always matches the input.
func (g *Gateway[T]) Create(ctx context.Context, models ...T) (created []T, err error) {
	ctx, scope := g.scope(ctx, "Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("batch.size", len(models))

	results := make([]recordstore.Result, len(models))
	pending := make([]recordstore.Record, 0, len(models))
	positions := make([]int, 0, len(models))

	for idx, model := range models {
		if verr := model.Validate(); verr != nil {
			results[idx] = recordstore.Result{Success: false, Message: verr.Error()}

			continue
		}

		pending = append(pending, model.ToRecord())
		positions = append(positions, idx)
	}

	if len(pending) > 0 {
		written, err := g.store.Create(ctx, g.table, pending...)
		if err == nil && len(written) != len(pending) {
			err = fmt.Errorf("%w: expected %d results, got %d", recordstore.ErrRemoteRejected, len(pending), len(written))
		}

		if err != nil {
			log.Error().Err(err).Str("table", g.table).Msg("failed to create records")
			g.notifier.Error(ctx, g.entity, fmt.Sprintf("Failed to create %s", g.entity))

			return []T{}, fmt.Errorf("failed to create %s: %w", g.entity, err)
		}

		for idx, result := range written {
			results[positions[idx]] = result
		}
	}

	records, err := recordstore.Partition(results)

	return g.decodeAll(records), g.surface(ctx, "create", err)
}

// Update merges fields into the record with id and returns the stored result.
func (g *Gateway[T]) Update(ctx context.Context, id int64, fields map[string]any) (model T, err error) {
	ctx, scope := g.scope(ctx, "Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record := recordstore.Record{}
	maps.Copy(record, fields)
	record[constant.FieldID] = id

	results, err := g.store.Update(ctx, g.table, record)
	if err != nil {
		log.Error().Err(err).Str("table", g.table).Int64("id", id).Msg("failed to update record")
		g.notifier.Error(ctx, g.entity, fmt.Sprintf("Failed to update %s", g.entity))

		return model, fmt.Errorf("failed to update %s: %w", g.entity, err)
	}

	records, err := recordstore.Partition(results)
	if err = g.surface(ctx, "update", err); err != nil {
		return model, err
	}

	if len(records) == 0 {
		return model, failure.NotFound(g.entity + " not found") // nolint:wrapcheck
	}

	return g.decode(records[0]), nil
}

// Delete returns the ids that were removed.
func (g *Gateway[T]) Delete(ctx context.Context, ids ...int64) (deleted []int64, err error) {
	ctx, scope := g.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	results, err := g.store.Delete(ctx, g.table, ids...)
	if err != nil {
		log.Error().Err(err).Str("table", g.table).Msg("failed to delete records")
		g.notifier.Error(ctx, g.entity, fmt.Sprintf("Failed to delete %s", g.entity))

		return []int64{}, fmt.Errorf("failed to delete %s: %w", g.entity, err)
	}

	records, err := recordstore.Partition(results)

	deleted = make([]int64, 0, len(records))
	for _, record := range records {
		if id, ok := record.ID(); ok {
			deleted = append(deleted, id)
		}
	}

	return deleted, g.surface(ctx, "delete", err)
}

// surface notifies the first failure of a partial batch and wraps the error.
func (g *Gateway[T]) surface(ctx context.Context, operation string, err error) error {
	if err == nil {
		return nil
	}

	var batchErr *recordstore.BatchError
	if errors.As(err, &batchErr) {
		log.Warn().
			Str("table", g.table).
			Int("failed", len(batchErr.Failures)).
			Int("succeeded", batchErr.Succeeded).
			Msg("batch partially applied")
	}

	g.notifier.Error(ctx, g.entity, err.Error())

	return fmt.Errorf("failed to %s %s: %w", operation, g.entity, err)
}

// AsBatchError returns the partial batch failure wrapped in err, if any.
func AsBatchError(err error) *recordstore.BatchError {
	var batchErr *recordstore.BatchError
	if errors.As(err, &batchErr) {
		return batchErr
	}

	return nil
}

// WriteFailure maps a rejected single record write to a 422 failure and a
// request the remote store refused outright to a 502. Other errors are
// returned unchanged.
func WriteFailure(err error) error {
	if batchErr := AsBatchError(err); batchErr != nil {
		return failure.Unprocessable(batchErr.Error()) // nolint:wrapcheck
	}

	if errors.Is(err, recordstore.ErrRemoteRejected) {
		return failure.BadGateway(err) // nolint:wrapcheck
	}

	return err
}
