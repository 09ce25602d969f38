package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"frontdesk/config"
	metricsMocks "frontdesk/infras/metrics/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/statistics/service"
	transactionMocks "frontdesk/internal/domains/transaction/mocks"
	transactionModel "frontdesk/internal/domains/transaction/model"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	rooms        *roomMocks.MockRoom
	bookings     *bookingMocks.MockBooking
	transactions *transactionMocks.MockTransaction
	storage      *s3Mocks.MockS3
	metrics      *metricsMocks.MockMetrics
	cache        *cacheMocks.MockRedisCache
}

func newDeps(t *testing.T) *deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	return &deps{
		rooms:        roomMocks.NewMockRoom(ctrl),
		bookings:     bookingMocks.NewMockBooking(ctrl),
		transactions: transactionMocks.NewMockTransaction(ctrl),
		storage:      s3Mocks.NewMockS3(ctrl),
		metrics:      metricsMocks.NewMockMetrics(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}
}

func (d *deps) service() service.Statistics {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Cache.DashboardTTL = 60

	return service.New(d.rooms, d.bookings, d.transactions, d.storage, d.metrics, cfg, d.cache, otelMocks.NewOtel())
}

func newService(t *testing.T) (service.Statistics, *deps) {
	t.Helper()

	d := newDeps(t)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return d.service(), d
}

func hotel() []roomModel.Room {
	return []roomModel.Room{
		{ID: 1, Status: roomModel.StatusOccupied},
		{ID: 2, Status: roomModel.StatusAvailable},
		{ID: 3, Status: roomModel.StatusCleaning},
	}
}

func TestStatisticsService_RoomStats(t *testing.T) {
	svc, d := newService(t)

	d.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotel(), nil)
	d.metrics.EXPECT().RoomStatus(map[string]int{
		string(roomModel.StatusAvailable):   1,
		string(roomModel.StatusOccupied):    1,
		string(roomModel.StatusCleaning):    1,
		string(roomModel.StatusMaintenance): 0,
	}, 33.3)

	res, err := svc.RoomStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Occupied)
	assert.InDelta(t, 33.3, res.OccupancyRate, 1e-9)
}

func TestStatisticsService_RoomStatsEmptyHotel(t *testing.T) {
	svc, d := newService(t)

	d.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{}, nil)
	d.metrics.EXPECT().RoomStatus(gomock.Any(), 0.0)

	res, err := svc.RoomStats(context.Background())

	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.OccupancyRate)
}

func TestStatisticsService_RoomStatsFailure(t *testing.T) {
	svc, d := newService(t)

	d.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{}, errors.New("timeout"))

	_, err := svc.RoomStats(context.Background())

	assert.Error(t, err)
}

func TestStatisticsService_RevenueByDateRangeWidensToWholeDays(t *testing.T) {
	svc, d := newService(t)

	loc := timezone.GetLocation()
	start := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	end := time.Date(2024, 3, 3, 0, 0, 0, 0, loc)

	d.transactions.EXPECT().
		RevenueByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to time.Time) (float64, error) {
			assert.True(t, from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, loc)))
			assert.True(t, to.Before(time.Date(2024, 3, 4, 0, 0, 0, 0, loc)))
			assert.True(t, to.After(time.Date(2024, 3, 3, 23, 59, 59, 0, loc)))

			return 1175, nil
		})

	res, err := svc.RevenueByDateRange(context.Background(), start, end)

	require.NoError(t, err)
	assert.InDelta(t, 1175.0, res.Total, 0.001)
	assert.Equal(t, "2024-03-01", res.Start)
	assert.Equal(t, "2024-03-03", res.End)
}

func TestStatisticsService_TrailingRevenue(t *testing.T) {
	svc, d := newService(t)

	today := timezone.Today()

	d.transactions.EXPECT().InRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]transactionModel.Transaction{
		{Amount: 100, Type: transactionModel.TypeBooking, Timestamp: today.Add(2 * time.Hour)},
		{Amount: 40, Type: transactionModel.TypeBooking, Timestamp: today.AddDate(0, 0, -6).Add(time.Hour)},
		{Amount: 500, Type: transactionModel.TypeOther, Timestamp: today.Add(time.Hour)},
	}, nil)

	res, err := svc.TrailingRevenue(context.Background())

	require.NoError(t, err)
	require.Len(t, res, constant.TrailingRevenueDay)
	assert.Equal(t, timezone.FormatDate(today), res[len(res)-1].Date)
	assert.InDelta(t, 100.0, res[len(res)-1].Amount, 0.001)
	assert.InDelta(t, 40.0, res[0].Amount, 0.001)
}

func TestStatisticsService_Dashboard(t *testing.T) {
	svc, d := newService(t)

	today := timezone.Today()

	d.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotel(), nil)
	d.metrics.EXPECT().RoomStatus(gomock.Any(), gomock.Any())
	d.bookings.EXPECT().Arrivals(gomock.Any(), today).Return([]bookingModel.Booking{{ID: 1, Status: bookingModel.StatusConfirmed}}, nil)
	d.bookings.EXPECT().Departures(gomock.Any(), today).Return([]bookingModel.Booking{}, nil)
	d.transactions.EXPECT().TotalRevenue(gomock.Any()).Return(175.0, nil)
	d.transactions.EXPECT().InRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]transactionModel.Transaction{}, nil)

	res, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Rooms.Total)
	require.Len(t, res.Arrivals, 1)
	assert.Equal(t, int64(1), res.Arrivals[0].ID)
	assert.NotNil(t, res.Departures)
	assert.InDelta(t, 175.0, res.TotalRevenue, 0.001)
	assert.Len(t, res.Trailing, constant.TrailingRevenueDay)
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestStatisticsService_DashboardFailsWhenAnyPartFails(t *testing.T) {
	svc, d := newService(t)

	d.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotel(), nil).AnyTimes()
	d.metrics.EXPECT().RoomStatus(gomock.Any(), gomock.Any()).AnyTimes()
	d.bookings.EXPECT().Arrivals(gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{}, errors.New("timeout")).AnyTimes()
	d.bookings.EXPECT().Departures(gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{}, nil).AnyTimes()
	d.transactions.EXPECT().TotalRevenue(gomock.Any()).Return(0.0, nil).AnyTimes()
	d.transactions.EXPECT().InRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]transactionModel.Transaction{}, nil).AnyTimes()

	_, err := svc.Dashboard(context.Background())

	require.Error(t, err)
	assert.ErrorContains(t, err, "arrivals")
}

func TestStatisticsService_RefreshDashboard(t *testing.T) {
	d := newDeps(t)
	svc := d.service()

	d.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotel(), nil)
	d.metrics.EXPECT().RoomStatus(gomock.Any(), gomock.Any())
	d.bookings.EXPECT().Arrivals(gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{}, nil)
	d.bookings.EXPECT().Departures(gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{}, nil)
	d.transactions.EXPECT().TotalRevenue(gomock.Any()).Return(10.0, nil)
	d.transactions.EXPECT().InRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]transactionModel.Transaction{}, nil)

	d.cache.EXPECT().Save(gomock.Any(), "statistics:dashboard", gomock.Any(), 60).Return(nil)
	d.cache.EXPECT().Save(gomock.Any(), "statistics:rooms", gomock.Any(), 60).Return(nil)

	assert.NoError(t, svc.RefreshDashboard(context.Background()))
}

func TestStatisticsService_ExportRevenue(t *testing.T) {
	svc, d := newService(t)

	loc := timezone.GetLocation()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, loc)

	d.transactions.EXPECT().InRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]transactionModel.Transaction{
		{ID: 1, BookingID: 4, Amount: 100, Type: transactionModel.TypeBooking, PaymentMethod: "card", Timestamp: start.Add(time.Hour)},
		{ID: 2, Amount: 1000, Type: transactionModel.TypeOther, Description: "event hall", Timestamp: start.Add(30 * time.Hour)},
	}, nil)

	var uploaded []byte

	d.storage.EXPECT().
		PutReport(gomock.Any(), "reports", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
		DoAndReturn(func(_ context.Context, directory, fileName, _ string, data []byte) (string, error) {
			assert.True(t, strings.HasPrefix(fileName, "revenue_2024-03-01_2024-03-02_"))
			assert.True(t, strings.HasSuffix(fileName, ".csv"))

			uploaded = data

			return "https://cdn.example.com/" + directory + "/" + fileName, nil
		})

	res, err := svc.ExportRevenue(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.InDelta(t, 1100.0, res.Total, 0.001)
	assert.Contains(t, res.URL, res.FileName)

	reader := csv.NewReader(bytes.NewReader(uploaded))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, []string{"1", start.Add(time.Hour).Format(time.RFC3339), "booking", "4", "card", "100.00", ""}, rows[1])
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, []string{"total_booking", "100.00"}, rows[3])
	assert.Equal(t, []string{"total", "1100.00"}, rows[len(rows)-1])
}

func TestStatisticsService_ExportRevenueRejectsInvertedRange(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ExportRevenue(context.Background(), time.Now(), time.Now().AddDate(0, 0, -3))

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestStatisticsService_ExportRevenueUploadFailure(t *testing.T) {
	svc, d := newService(t)

	d.transactions.EXPECT().InRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]transactionModel.Transaction{}, nil)
	d.storage.EXPECT().PutReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))

	_, err := svc.ExportRevenue(context.Background(), time.Now(), time.Now())

	assert.Error(t, err)
}
