package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"frontdesk/config"
	metricsMocks "frontdesk/infras/metrics/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
	notifyMocks "frontdesk/shared/notify/mocks"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	repo     *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoomService
	guests   *guestMocks.MockGuestService
	notifier *notifyMocks.MockNotifier
	metrics  *metricsMocks.MockMetrics
	cfg      *config.Config
}

func newService(t *testing.T) (service.Booking, *deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := &deps{
		repo:     bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoomService(ctrl),
		guests:   guestMocks.NewMockGuestService(ctrl),
		notifier: notifyMocks.NewMockNotifier(ctrl),
		metrics:  metricsMocks.NewMockMetrics(ctrl),
		cfg:      &config.Config{},
	}
	d.cfg.Cache.TTL = 3600

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(d.repo, d.rooms, d.guests, d.notifier, d.metrics, d.cfg, mockCache, otelMocks.NewOtel())

	return svc, d
}

func echoCreate(id int64) func(context.Context, ...model.Booking) ([]model.Booking, error) {
	return func(_ context.Context, bookings ...model.Booking) ([]model.Booking, error) {
		created := bookings[0]
		created.ID = id

		return []model.Booking{created}, nil
	}
}

func TestBookingService_CreatePricesStay(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		room      roomDto.RoomResponse
		roomErr   error
		wantTotal float64
	}{
		{
			name:      "two nights at the base rate",
			checkIn:   "2024-01-02",
			checkOut:  "2024-01-04",
			room:      roomDto.RoomResponse{ID: 5, BaseRate: 100},
			wantTotal: 200,
		},
		{
			name:      "same day stay is free",
			checkIn:   "2024-01-02",
			checkOut:  "2024-01-02",
			room:      roomDto.RoomResponse{ID: 5, BaseRate: 100},
			wantTotal: 0,
		},
		{
			name:      "missing room prices at zero",
			checkIn:   "2024-01-02",
			checkOut:  "2024-01-05",
			roomErr:   failure.NotFound("room not found"),
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			d.rooms.EXPECT().Get(gomock.Any(), int64(5)).Return(tt.room, tt.roomErr)
			d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(10))
			d.metrics.EXPECT().BookingCreated(1)
			d.notifier.EXPECT().Success(gomock.Any(), model.EntityName, gomock.Any())
			d.guests.EXPECT().AddBookingToHistory(gomock.Any(), int64(3), int64(10)).Return(nil)

			res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
				GuestID:  3,
				RoomID:   5,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			})

			require.NoError(t, err)
			assert.Equal(t, int64(10), res.ID)
			assert.InDelta(t, tt.wantTotal, res.TotalAmount, 0.001)
			assert.Equal(t, string(model.StatusConfirmed), res.Status)
			assert.Equal(t, string(model.PaymentPending), res.PaymentStatus)
			assert.Equal(t, 1, res.NumberOfGuests)
		})
	}
}

func TestBookingService_CreateSurvivesHistoryFailure(t *testing.T) {
	svc, d := newService(t)

	d.rooms.EXPECT().Get(gomock.Any(), int64(5)).Return(roomDto.RoomResponse{ID: 5, BaseRate: 80}, nil)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(11))
	d.metrics.EXPECT().BookingCreated(1)
	d.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())
	d.guests.EXPECT().AddBookingToHistory(gomock.Any(), int64(3), int64(11)).Return(failure.NotFound("guest not found"))

	res, err := svc.Create(context.Background(), dto.CreateBookingRequest{GuestID: 3, RoomID: 5, CheckIn: "2024-03-01", CheckOut: "2024-03-02"})

	require.NoError(t, err)
	assert.InDelta(t, 80.0, res.TotalAmount, 0.001)
}

func TestBookingService_CreateErrors(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateBookingRequest
		setup    func(d *deps)
		wantCode int
	}{
		{
			name:     "unparseable date",
			req:      dto.CreateBookingRequest{GuestID: 1, RoomID: 5, CheckIn: "01/02/2024", CheckOut: "2024-01-04"},
			setup:    func(*deps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "reversed dates with strict dates",
			req:  dto.CreateBookingRequest{GuestID: 1, RoomID: 5, CheckIn: "2024-01-04", CheckOut: "2024-01-02"},
			setup: func(d *deps) {
				d.cfg.Booking.StrictDates = true
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overlap with prevention enabled",
			req:  dto.CreateBookingRequest{GuestID: 1, RoomID: 5, CheckIn: "2024-01-02", CheckOut: "2024-01-04"},
			setup: func(d *deps) {
				d.cfg.Booking.PreventOverlap = true
				d.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any()).Return([]model.Booking{{ID: 2, RoomID: 5}}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "room lookup failure",
			req:  dto.CreateBookingRequest{GuestID: 1, RoomID: 5, CheckIn: "2024-01-02", CheckOut: "2024-01-04"},
			setup: func(d *deps) {
				d.rooms.EXPECT().Get(gomock.Any(), int64(5)).Return(roomDto.RoomResponse{}, errors.New("store offline"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setup(d)

			_, err := svc.Create(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_CreateAllowsReversedDatesByDefault(t *testing.T) {
	svc, d := newService(t)

	d.rooms.EXPECT().Get(gomock.Any(), int64(5)).Return(roomDto.RoomResponse{ID: 5, BaseRate: 100}, nil)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(12))
	d.metrics.EXPECT().BookingCreated(1)
	d.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())
	d.guests.EXPECT().AddBookingToHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Create(context.Background(), dto.CreateBookingRequest{GuestID: 1, RoomID: 5, CheckIn: "2024-01-04", CheckOut: "2024-01-02"})

	require.NoError(t, err)
	assert.Equal(t, -2, res.Nights)
	assert.InDelta(t, -200.0, res.TotalAmount, 0.001)
}

func TestBookingService_UpdateStatusSideEffects(t *testing.T) {
	tests := []struct {
		name     string
		from     model.Status
		to       model.Status
		wantRoom roomModel.Status
	}{
		{name: "check in occupies the room", from: model.StatusConfirmed, to: model.StatusCheckedIn, wantRoom: roomModel.StatusOccupied},
		{name: "check out sends the room to cleaning", from: model.StatusCheckedIn, to: model.StatusCheckedOut, wantRoom: roomModel.StatusCleaning},
		{name: "cancel after check in sends the room to cleaning", from: model.StatusCheckedIn, to: model.StatusCancelled, wantRoom: roomModel.StatusCleaning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(model.Booking{ID: 7, RoomID: 5, Status: tt.from}, nil)
			d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), tt.to).Return(model.Booking{ID: 7, RoomID: 5, Status: tt.to}, nil)
			d.metrics.EXPECT().BookingTransition(string(tt.from), string(tt.to))
			d.notifier.EXPECT().Success(gomock.Any(), model.EntityName, gomock.Any())
			d.rooms.EXPECT().UpdateStatus(gomock.Any(), int64(5), tt.wantRoom).Return(roomDto.RoomResponse{ID: 5, Status: string(tt.wantRoom)}, nil)

			res, err := svc.UpdateStatus(context.Background(), 7, tt.to)

			require.NoError(t, err)
			assert.Equal(t, string(tt.to), res.Status)
		})
	}
}

func TestBookingService_CancelConfirmedLeavesRoom(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(model.Booking{ID: 7, RoomID: 5, Status: model.StatusConfirmed}, nil)
	d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), model.StatusCancelled).Return(model.Booking{ID: 7, RoomID: 5, Status: model.StatusCancelled}, nil)
	d.metrics.EXPECT().BookingTransition(string(model.StatusConfirmed), string(model.StatusCancelled))
	d.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

	res, err := svc.Cancel(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCancelled), res.Status)
}

func TestBookingService_RepeatedCheckInIsIdempotent(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(model.Booking{ID: 7, RoomID: 5, Status: model.StatusCheckedIn}, nil).Times(2)
	d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), model.StatusCheckedIn).
		Return(model.Booking{ID: 7, RoomID: 5, Status: model.StatusCheckedIn}, nil).Times(2)

	for range 2 {
		res, err := svc.CheckIn(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, string(model.StatusCheckedIn), res.Status)
	}
}

func TestBookingService_RoomFailureKeepsBookingWrite(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(model.Booking{ID: 7, RoomID: 5, Status: model.StatusConfirmed}, nil)
	d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), model.StatusCheckedIn).Return(model.Booking{ID: 7, RoomID: 5, Status: model.StatusCheckedIn}, nil)
	d.metrics.EXPECT().BookingTransition(gomock.Any(), gomock.Any())
	d.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())
	d.rooms.EXPECT().UpdateStatus(gomock.Any(), int64(5), roomModel.StatusOccupied).Return(roomDto.RoomResponse{}, failure.NotFound("room not found"))
	d.notifier.EXPECT().Error(gomock.Any(), model.EntityName, gomock.Any())

	res, err := svc.CheckIn(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCheckedIn), res.Status)
}

func TestBookingService_StrictTransitions(t *testing.T) {
	svc, d := newService(t)
	d.cfg.Booking.StrictTransitions = true

	d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(model.Booking{ID: 7, RoomID: 5, Status: model.StatusCheckedOut}, nil)

	_, err := svc.CheckIn(context.Background(), 7)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
}

func TestBookingService_UpdateStatusNotFound(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), int64(99)).Return(model.Booking{}, failure.NotFound("booking not found"))

	_, err := svc.CheckOut(context.Background(), 99)

	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_UpdateRepricesStay(t *testing.T) {
	svc, d := newService(t)

	checkOut := "2024-01-05"
	current := model.Booking{
		ID:       7,
		RoomID:   5,
		CheckIn:  mustDate(t, "2024-01-02"),
		CheckOut: mustDate(t, "2024-01-03"),
		Status:   model.StatusConfirmed,
	}

	d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(current, nil)
	d.rooms.EXPECT().Get(gomock.Any(), int64(5)).Return(roomDto.RoomResponse{ID: 5, BaseRate: 50}, nil)
	d.repo.EXPECT().
		Update(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, fields map[string]any) (model.Booking, error) {
			assert.Equal(t, checkOut, fields[model.FieldCheckOut])
			assert.InDelta(t, 150.0, fields[model.FieldTotalAmount], 0.001)

			updated := current
			updated.CheckOut = mustDate(t, checkOut)
			updated.TotalAmount = 150

			return updated, nil
		})

	res, err := svc.Update(context.Background(), dto.UpdateBookingRequest{CheckOut: &checkOut}, 7)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Nights)
	assert.InDelta(t, 150.0, res.TotalAmount, 0.001)
}

func TestBookingService_UpdateGuestAppendsHistory(t *testing.T) {
	tests := []struct {
		name       string
		guestID    int64
		historyErr error
		wantAppend bool
	}{
		{name: "new guest gets the booking", guestID: 9, wantAppend: true},
		{name: "history failure keeps the update", guestID: 9, historyErr: errors.New("timeout"), wantAppend: true},
		{name: "same guest is left alone", guestID: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			current := model.Booking{ID: 7, GuestID: 3, RoomID: 5, Status: model.StatusConfirmed}
			updated := current
			updated.GuestID = tt.guestID

			d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(current, nil)
			d.repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(updated, nil)

			if tt.wantAppend {
				d.guests.EXPECT().AddBookingToHistory(gomock.Any(), tt.guestID, int64(7)).Return(tt.historyErr)
			}

			guestID := tt.guestID
			res, err := svc.Update(context.Background(), dto.UpdateBookingRequest{GuestID: &guestID}, 7)

			require.NoError(t, err)
			assert.Equal(t, tt.guestID, res.GuestID)
		})
	}
}

func TestBookingService_TodayArrivals(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Arrivals(gomock.Any(), timezone.Today()).Return([]model.Booking{{ID: 1, Status: model.StatusConfirmed}}, nil)

	res, err := svc.TodayArrivals(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(1), res[0].ID)
}

func TestBookingService_GetByStatusReturnsEmptyOnError(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().ByStatus(gomock.Any(), model.StatusCheckedIn).Return([]model.Booking{}, errors.New("timeout"))

	res, err := svc.GetByStatus(context.Background(), model.StatusCheckedIn)

	require.Error(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestBookingService_Delete(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), int64(7)).Return(model.Booking{ID: 7}, nil)
	d.repo.EXPECT().Delete(gomock.Any(), int64(7)).Return([]int64{7}, nil)

	assert.NoError(t, svc.Delete(context.Background(), 7))
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := timezone.ParseDate(value)
	require.NoError(t, err)

	return date
}
