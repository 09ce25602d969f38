package recordstore

//go:generate go run go.uber.org/mock/mockgen -source=./recordstore.go -destination=./mocks/recordstore_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrUnknownDriver     = errors.New("unknown record store driver")
	ErrMissingID         = errors.New("record has no id")
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Query selects records of one table. Empty Fields means every column.
type Query struct {
	Fields []string        `json:"fields,omitempty"`
	Where  dto.FilterGroup `json:"where"`
	Params dto.QueryParams `json:"params"`
}

// Result is the per-record outcome of a batch write.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

func succeeded(data Record) Result {
	return Result{Success: true, Data: data}
}

func failed(format string, args ...any) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}

// Client is the generic tabular store every record gateway talks to.
//
// Batch writes only return an error when the whole call failed. Per-record
// failures are reported through Result.
type Client interface {
	Fetch(ctx context.Context, table string, query Query) ([]Record, error)
	Count(ctx context.Context, table string, where dto.FilterGroup) (int, error)
	Get(ctx context.Context, table string, id int64, fields ...string) (Record, error)
	Create(ctx context.Context, table string, records ...Record) ([]Result, error)
	Update(ctx context.Context, table string, records ...Record) ([]Result, error)
	Delete(ctx context.Context, table string, ids ...int64) ([]Result, error)
	Close() error
}

// BatchError lists the failed records of a partially applied batch.
type BatchError struct {
	Failures  []Result
	Succeeded int
}

// Error returns the first failure message.
func (e *BatchError) Error() string {
	if len(e.Failures) == 0 {
		return "batch failed"
	}

	return e.Failures[0].Message
}

// Partition splits batch results into the records that were written and a
// *BatchError describing the rest. The error is nil when nothing failed.
func Partition(results []Result) ([]Record, error) {
	records := make([]Record, 0, len(results))
	failures := []Result{}

	for _, result := range results {
		if !result.Success {
			failures = append(failures, result)

			continue
		}

		records = append(records, result.Data)
	}

	if len(failures) == 0 {
		return records, nil
	}

	return records, &BatchError{Failures: failures, Succeeded: len(records)}
}

// New builds the client selected by RECORD_STORE_DRIVER. The returned
// cleanup closes it.
func New(cfg *config.Config, ot otel.Otel) (Client, func(), error) {
	var (
		client Client
		err    error
	)

	switch cfg.RecordStore.Driver {
	case config.RecordStoreDriverPostgres, constant.Empty:
		var conn *postgres.Connection

		if cfg.DB.Postgres.AutoMigrate {
			if err = helper.Up(cfg); err != nil {
				break
			}
		}

		conn, err = postgres.New(cfg)
		if err == nil {
			client = NewPostgres(conn, ot)
		}
	case config.RecordStoreDriverRemote:
		client, err = NewRemote(cfg, ot)
	case config.RecordStoreDriverMemory:
		client = NewMemory()
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.RecordStore.Driver)
	}

	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("driver", cfg.RecordStore.Driver).Msg("Record store initialized")

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close record store")
		}
	}

	return client, cleanup, nil
}

func validateIdentifiers(names ...string) error {
	for _, name := range names {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}

	return nil
}

func filterFields(group dto.FilterGroup) []string {
	fields := []string{}

	for _, item := range group.Filters {
		switch filter := item.(type) {
		case dto.Filter:
			fields = append(fields, filter.Field)
		case dto.FilterGroup:
			fields = append(fields, filterFields(filter)...)
		}
	}

	return fields
}

func validateQuery(table string, query Query) error {
	names := append([]string{table}, query.Fields...)
	names = append(names, filterFields(query.Where)...)

	if query.Params.SortBy != "" {
		names = append(names, query.Params.SortBy)
	}

	return validateIdentifiers(names...)
}
