package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/infras/recordstore"
	"frontdesk/internal/domains/transaction/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
	gRepo "frontdesk/shared/repository"
)

// Transaction is append-only: entries are never updated or deleted.
type Transaction interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, fields ...string) ([]model.Transaction, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64, fields ...string) (model.Transaction, error)
	ByBooking(ctx context.Context, bookingID int64) ([]model.Transaction, error)
	ByType(ctx context.Context, kind model.Type) ([]model.Transaction, error)
	InRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	Create(ctx context.Context, transactions ...model.Transaction) ([]model.Transaction, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByDateRange(ctx context.Context, start, end time.Time) (float64, error)
}

type repositoryImpl struct {
	gRepo.Gateway[model.Transaction]
}

func New(store recordstore.Client, notifier notify.Notifier, otel otel.Otel) Transaction {
	return &repositoryImpl{
		Gateway: gRepo.NewGateway[model.Transaction](model.EntityName, model.TableName, model.FromRecord, store, notifier, otel),
	}
}

func BookingFilter(bookingID int64) gDto.FilterGroup {
	return shared.FilterByField(model.FieldBookingID, bookingID)
}

func TypeFilter(kind model.Type) gDto.FilterGroup {
	return shared.FilterByField(model.FieldType, string(kind))
}

// RangeFilter matches entries whose timestamp lies in [start, end].
func RangeFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTimestamp, Value: start, Operator: gDto.FilterOperatorGreaterEq},
			gDto.Filter{Field: model.FieldTimestamp, Value: end, Operator: gDto.FilterOperatorLessEq},
		},
	}
}

func (repo *repositoryImpl) ByBooking(ctx context.Context, bookingID int64) ([]model.Transaction, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, BookingFilter(bookingID)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ByType(ctx context.Context, kind model.Type) ([]model.Transaction, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, TypeFilter(kind)) //nolint:wrapcheck
}

func (repo *repositoryImpl) InRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, RangeFilter(start, end)) //nolint:wrapcheck
}

// TotalRevenue sums booking entries only. Refunds and other entries are
// excluded.
func (repo *repositoryImpl) TotalRevenue(ctx context.Context) (float64, error) {
	transactions, err := repo.ByType(ctx, model.TypeBooking)
	if err != nil {
		return 0, err
	}

	return model.Sum(transactions, model.Transaction.IsRevenue), nil
}

// RevenueByDateRange sums entries of every type in [start, end].
func (repo *repositoryImpl) RevenueByDateRange(ctx context.Context, start, end time.Time) (float64, error) {
	transactions, err := repo.InRange(ctx, start, end)
	if err != nil {
		return 0, err
	}

	return model.Sum(transactions, nil), nil
}
