package statistics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "frontdesk/infras/otel/mocks"
	statisticsMocks "frontdesk/internal/domains/statistics/mocks"
	"frontdesk/internal/domains/statistics/model/dto"
	"frontdesk/internal/handlers/statistics"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *statisticsMocks.MockStatisticsService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := statisticsMocks.NewMockStatisticsService(ctrl)

	handler := statistics.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetRoomStats(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().RoomStats(gomock.Any()).Return(dto.RoomStatsResponse{Total: 4, Occupied: 1, Available: 3, OccupancyRate: 25}, nil)

	rec := serve(router, http.MethodGet, "/statistics/rooms", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"total":4,"occupied":1,"available":3,"cleaning":0,"maintenance":0,"occupancy_rate":25}}`, rec.Body.String())
}

func TestGetRoomStatsFailureHasNoZeroFallback(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().RoomStats(gomock.Any()).Return(dto.RoomStatsResponse{}, errors.New("failed to load rooms for statistics"))

	rec := serve(router, http.MethodGet, "/statistics/rooms", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestGetRevenue(t *testing.T) {
	t.Run("total", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().TotalRevenue(gomock.Any()).Return(dto.RevenueResponse{Total: 175}, nil)

		rec := serve(router, http.MethodGet, "/statistics/revenue", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"total":175}}`, rec.Body.String())
	})

	t.Run("range", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().
			RevenueByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) (dto.RevenueResponse, error) {
				return dto.RevenueResponse{Total: 10, Start: timezone.FormatDate(start), End: timezone.FormatDate(end)}, nil
			})

		rec := serve(router, http.MethodGet, "/statistics/revenue?start=2024-01-01&end=2024-01-07", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"total":10,"start":"2024-01-01","end":"2024-01-07"}}`, rec.Body.String())
	})

	t.Run("malformed range", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodGet, "/statistics/revenue?start=yesterday&end=2024-01-07", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTrailingRevenue(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().TrailingRevenue(gomock.Any()).Return([]dto.DailyRevenueResponse{{Date: "2024-01-01", Amount: 100}}, nil)

	rec := serve(router, http.MethodGet, "/statistics/revenue/trailing", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"date":"2024-01-01","amount":100}]}`, rec.Body.String())
}

func TestExportRevenue(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *statisticsMocks.MockStatisticsService)
		wantCode  int
	}{
		{
			name: "uploaded",
			body: `{"start":"2024-01-01","end":"2024-01-31"}`,
			setupMock: func(svc *statisticsMocks.MockStatisticsService) {
				svc.EXPECT().
					ExportRevenue(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, start, end time.Time) (dto.ExportRevenueResponse, error) {
						assert.Equal(t, "2024-01-01", timezone.FormatDate(start))
						assert.Equal(t, "2024-01-31", timezone.FormatDate(end))

						return dto.ExportRevenueResponse{URL: "http://reports/revenue.csv", FileName: "revenue.csv", Rows: 3, Total: 175}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing end",
			body:      `{"start":"2024-01-01"}`,
			setupMock: func(*statisticsMocks.MockStatisticsService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inverted range",
			body: `{"start":"2024-02-01","end":"2024-01-01"}`,
			setupMock: func(svc *statisticsMocks.MockStatisticsService) {
				svc.EXPECT().ExportRevenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.ExportRevenueResponse{}, failure.InvalidDateRangeParam)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "storage down",
			body: `{"start":"2024-01-01","end":"2024-01-31"}`,
			setupMock: func(svc *statisticsMocks.MockStatisticsService) {
				svc.EXPECT().ExportRevenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.ExportRevenueResponse{}, errors.New("failed to upload revenue report"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodPost, "/statistics/revenue/export", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetDashboardFailure(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{}, errors.New("failed to load arrivals"))

	rec := serve(router, http.MethodGet, "/statistics/dashboard", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
