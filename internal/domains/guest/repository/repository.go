package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/infras/recordstore"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
	gRepo "frontdesk/shared/repository"
)

type Guest interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, fields ...string) ([]model.Guest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64, fields ...string) (model.Guest, error)
	Search(ctx context.Context, query string, params gDto.QueryParams) ([]model.Guest, error)
	GetVIP(ctx context.Context, params gDto.QueryParams) ([]model.Guest, error)
	Create(ctx context.Context, guests ...model.Guest) ([]model.Guest, error)
	Update(ctx context.Context, id int64, fields map[string]any) (model.Guest, error)
	AddBookingToHistory(ctx context.Context, guestID, bookingID int64) (model.Guest, error)
	Delete(ctx context.Context, ids ...int64) ([]int64, error)
}

type repositoryImpl struct {
	gRepo.Gateway[model.Guest]
}

func New(store recordstore.Client, notifier notify.Notifier, otel otel.Otel) Guest {
	return &repositoryImpl{
		Gateway: gRepo.NewGateway[model.Guest](model.EntityName, model.TableName, model.FromRecord, store, notifier, otel),
	}
}

// SearchFilter matches query as a case-insensitive substring of any of the
// searchable guest fields.
func SearchFilter(query string) gDto.FilterGroup {
	query = strings.TrimSpace(query)

	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}
	for _, field := range model.SearchFields {
		group.Add(gDto.Filter{Field: field, Value: query, Operator: gDto.FilterOperatorLike})
	}

	return group
}

func VIPFilter() gDto.FilterGroup {
	return shared.FilterByField(model.FieldVIPStatus, true)
}

func (repo *repositoryImpl) Search(ctx context.Context, query string, params gDto.QueryParams) ([]model.Guest, error) {
	return repo.GetAll(ctx, params, SearchFilter(query)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetVIP(ctx context.Context, params gDto.QueryParams) ([]model.Guest, error) {
	return repo.GetAll(ctx, params, VIPFilter()) //nolint:wrapcheck
}

// AddBookingToHistory reads the guest and writes back its history with
// bookingID appended. Two concurrent calls for one guest can lose an id.
func (repo *repositoryImpl) AddBookingToHistory(ctx context.Context, guestID, bookingID int64) (model.Guest, error) {
	guest, err := repo.Get(ctx, guestID, model.FieldBookingHistory)
	if err != nil {
		return guest, err //nolint:wrapcheck
	}

	return repo.Update(ctx, guestID, map[string]any{ //nolint:wrapcheck
		model.FieldBookingHistory: recordstore.JoinInt64List(guest.WithBooking(bookingID)),
	})
}
