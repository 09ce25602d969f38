package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Statistics=MockStatisticsService

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/metrics"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/internal/domains/statistics/model"
	"frontdesk/internal/domains/statistics/model/dto"
	transactionRepository "frontdesk/internal/domains/transaction/repository"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const reportDirectory = "reports"

var (
	cacheDashboard = constant.CachePrefixStatistics + ":dashboard"
	cacheRoomStats = constant.CachePrefixStatistics + ":rooms"
)

type Statistics interface {
	RoomStats(ctx context.Context) (dto.RoomStatsResponse, error)
	TotalRevenue(ctx context.Context) (dto.RevenueResponse, error)
	RevenueByDateRange(ctx context.Context, start, end time.Time) (dto.RevenueResponse, error)
	TrailingRevenue(ctx context.Context) ([]dto.DailyRevenueResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	RefreshDashboard(ctx context.Context) error
	ExportRevenue(ctx context.Context, start, end time.Time) (dto.ExportRevenueResponse, error)
}

type serviceImpl struct {
	rooms        roomRepository.Room
	bookings     bookingRepository.Booking
	transactions transactionRepository.Transaction
	storage      s3.S3
	metrics      metrics.Metrics
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	rooms roomRepository.Room,
	bookings bookingRepository.Booking,
	transactions transactionRepository.Transaction,
	storage s3.S3,
	metrics metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Statistics {
	return &serviceImpl{
		rooms:        rooms,
		bookings:     bookings,
		transactions: transactions,
		storage:      storage,
		metrics:      metrics,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) RoomStats(ctx context.Context) (res dto.RoomStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err := s.cache.Get(ctx, cacheRoomStats, &res); err == nil {
		log.Info().Str("cacheKey", cacheRoomStats).Msg("cache hit for room statistics")

		return res, nil
	}

	stats, err := s.roomStats(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(stats)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomStats, res, s.cfg.Cache.DashboardTTL); err != nil {
			log.Error().Err(err).Msg("failed to save room statistics to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) TotalRevenue(ctx context.Context) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TotalRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Total, err = s.transactions.TotalRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute total revenue")

		return res, fmt.Errorf("failed to compute total revenue: %w", err)
	}

	return res, nil
}

// RevenueByDateRange sums every entry from the start of the first day to the
// end of the last day.
func (s *serviceImpl) RevenueByDateRange(ctx context.Context, start, end time.Time) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevenueByDateRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to := timezone.DayBounds(start, end)

	res.Start = timezone.FormatDate(from)
	res.End = timezone.FormatDate(to)

	res.Total, err = s.transactions.RevenueByDateRange(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Str("start", res.Start).Str("end", res.End).Msg("failed to compute revenue by date range")

		return res, fmt.Errorf("failed to compute revenue by date range: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) TrailingRevenue(ctx context.Context) (res []dto.DailyRevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TrailingRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	series, err := s.trailingRevenue(ctx)
	if err != nil {
		return dto.FromSeries(series), err
	}

	return dto.FromSeries(series), nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err := s.cache.Get(ctx, cacheDashboard, &res); err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	res, err = s.buildDashboard(ctx)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.DashboardTTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

// RefreshDashboard rebuilds the dashboard and replaces the cached copy.
func (s *serviceImpl) RefreshDashboard(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := s.buildDashboard(ctx)
	if err != nil {
		return err
	}

	if err = s.cache.Save(ctx, cacheDashboard, res, s.cfg.Cache.DashboardTTL); err != nil {
		log.Error().Err(err).Msg("failed to save dashboard to cache")

		return fmt.Errorf("failed to save dashboard to cache: %w", err)
	}

	if err = s.cache.Save(ctx, cacheRoomStats, res.Rooms, s.cfg.Cache.DashboardTTL); err != nil {
		log.Error().Err(err).Msg("failed to save room statistics to cache")

		return fmt.Errorf("failed to save room statistics to cache: %w", err)
	}

	return nil
}

// ExportRevenue uploads a CSV of the entries in the date range and returns
// the object URL.
func (s *serviceImpl) ExportRevenue(ctx context.Context, start, end time.Time) (res dto.ExportRevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to := timezone.DayBounds(start, end)
	if to.Before(from) {
		return res, failure.InvalidDateRangeParam
	}

	transactions, err := s.transactions.InRange(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to load transactions for revenue report")

		return res, fmt.Errorf("failed to load transactions for revenue report: %w", err)
	}

	data, err := revenueReport(transactions)
	if err != nil {
		log.Error().Err(err).Msg("failed to render revenue report")

		return res, err
	}

	fileName := fmt.Sprintf("revenue_%s_%s_%s.csv", timezone.FormatDate(from), timezone.FormatDate(to), uuid.NewString())

	url, err := s.storage.PutReport(ctx, reportDirectory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to upload revenue report")

		return res, fmt.Errorf("failed to upload revenue report: %w", err)
	}

	res.URL = url
	res.FileName = fileName
	res.Rows = len(transactions)

	for _, transaction := range transactions {
		res.Total += transaction.Amount
	}

	return res, nil
}

func (s *serviceImpl) roomStats(ctx context.Context) (model.RoomStats, error) {
	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms for statistics")

		return model.RoomStats{}, fmt.Errorf("failed to load rooms for statistics: %w", err)
	}

	stats := model.ComputeRoomStats(rooms)

	s.metrics.RoomStatus(stats.Counts(), stats.OccupancyRate)

	return stats, nil
}

func (s *serviceImpl) trailingRevenue(ctx context.Context) ([]model.DailyRevenue, error) {
	today := timezone.Today()
	from := today.AddDate(0, 0, -(constant.TrailingRevenueDay - 1))
	to := today.AddDate(0, 0, 1).Add(-time.Nanosecond)

	transactions, err := s.transactions.InRange(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to load transactions for trailing revenue")

		return []model.DailyRevenue{}, fmt.Errorf("failed to load transactions for trailing revenue: %w", err)
	}

	return model.TrailingRevenue(transactions, today, constant.TrailingRevenueDay), nil
}

// buildDashboard loads the dashboard parts concurrently. Any failing part
// fails the whole dashboard.
func (s *serviceImpl) buildDashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	var dashboard model.Dashboard

	today := timezone.Today()
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		dashboard.Rooms, err = s.roomStats(gctx)

		return err
	})

	group.Go(func() error {
		arrivals, err := s.bookings.Arrivals(gctx, today)
		if err != nil {
			return fmt.Errorf("failed to load arrivals: %w", err)
		}

		dashboard.Arrivals = arrivals

		return nil
	})

	group.Go(func() error {
		departures, err := s.bookings.Departures(gctx, today)
		if err != nil {
			return fmt.Errorf("failed to load departures: %w", err)
		}

		dashboard.Departures = departures

		return nil
	})

	group.Go(func() (err error) {
		dashboard.TotalRevenue, err = s.transactions.TotalRevenue(gctx)
		if err != nil {
			return fmt.Errorf("failed to compute total revenue: %w", err)
		}

		return nil
	})

	group.Go(func() (err error) {
		dashboard.Trailing, err = s.trailingRevenue(gctx)

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to build dashboard")

		return res, err //nolint:wrapcheck
	}

	dashboard.GeneratedAt = timezone.Now()
	res.FromModel(dashboard)

	return res, nil
}
