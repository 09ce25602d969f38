package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/infras/recordstore"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"
)

type Booking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, fields ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64, fields ...string) (model.Booking, error)
	ByStatus(ctx context.Context, status model.Status) ([]model.Booking, error)
	ByGuest(ctx context.Context, guestID int64) ([]model.Booking, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]model.Booking, error)
	Arrivals(ctx context.Context, day time.Time) ([]model.Booking, error)
	Departures(ctx context.Context, day time.Time) ([]model.Booking, error)
	Overlapping(ctx context.Context, booking model.Booking) ([]model.Booking, error)
	Create(ctx context.Context, bookings ...model.Booking) ([]model.Booking, error)
	Update(ctx context.Context, id int64, fields map[string]any) (model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) (model.Booking, error)
	Delete(ctx context.Context, ids ...int64) ([]int64, error)
}

type repositoryImpl struct {
	gRepo.Gateway[model.Booking]
}

func New(store recordstore.Client, notifier notify.Notifier, otel otel.Otel) Booking {
	return &repositoryImpl{
		Gateway: gRepo.NewGateway[model.Booking](model.EntityName, model.TableName, model.FromRecord, store, notifier, otel),
	}
}

func between(field string, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Value: timezone.FormatDate(start), Operator: gDto.FilterOperatorGreaterEq},
			gDto.Filter{Field: field, Value: timezone.FormatDate(end), Operator: gDto.FilterOperatorLessEq},
		},
	}
}

// DateRangeFilter matches bookings that check in or check out within
// [start, end]. Stays that span the whole range without touching either end
// are not matched.
func DateRangeFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			between(model.FieldCheckIn, start, end),
			between(model.FieldCheckOut, start, end),
		},
	}
}

func StatusFilter(status model.Status) gDto.FilterGroup {
	return shared.FilterByField(model.FieldStatus, string(status))
}

func GuestFilter(guestID int64) gDto.FilterGroup {
	return shared.FilterByField(model.FieldGuestID, guestID)
}

func RoomFilter(roomID int64) gDto.FilterGroup {
	return shared.FilterByField(model.FieldRoomID, roomID)
}

func onDay(field string, day time.Time, status model.Status) gDto.FilterGroup {
	filter := shared.FilterByField(field, timezone.FormatDate(day))
	filter.Add(gDto.Filter{Field: model.FieldStatus, Value: string(status), Operator: gDto.FilterOperatorEq})

	return filter
}

func (repo *repositoryImpl) ByStatus(ctx context.Context, status model.Status) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, StatusFilter(status)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ByGuest(ctx context.Context, guestID int64) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, GuestFilter(guestID)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ByDateRange(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, DateRangeFilter(start, end)) //nolint:wrapcheck
}

// Arrivals lists confirmed bookings checking in on day.
func (repo *repositoryImpl) Arrivals(ctx context.Context, day time.Time) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, onDay(model.FieldCheckIn, day, model.StatusConfirmed)) //nolint:wrapcheck
}

// Departures lists checked-in bookings checking out on day.
func (repo *repositoryImpl) Departures(ctx context.Context, day time.Time) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, onDay(model.FieldCheckOut, day, model.StatusCheckedIn)) //nolint:wrapcheck
}

// Overlapping returns the live bookings of the same room whose stay shares a
// night with booking. The booking itself is excluded when it has an id.
func (repo *repositoryImpl) Overlapping(ctx context.Context, booking model.Booking) ([]model.Booking, error) {
	filter := RoomFilter(booking.RoomID)
	filter.Add(
		gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusCancelled), Operator: gDto.FilterOperatorNotEq},
		gDto.Filter{Field: model.FieldCheckIn, Value: timezone.FormatDate(booking.CheckOut), Operator: gDto.FilterOperatorLessEq},
		gDto.Filter{Field: model.FieldCheckOut, Value: timezone.FormatDate(booking.CheckIn), Operator: gDto.FilterOperatorGreaterEq},
	)

	candidates, err := repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return candidates, err //nolint:wrapcheck
	}

	overlapping := []model.Booking{}

	for _, candidate := range candidates {
		if candidate.ID == booking.ID || !candidate.Overlaps(booking) {
			continue
		}

		overlapping = append(overlapping, candidate)
	}

	return overlapping, nil
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id int64, status model.Status) (model.Booking, error) {
	return repo.Update(ctx, id, map[string]any{model.FieldStatus: string(status)}) //nolint:wrapcheck
}
