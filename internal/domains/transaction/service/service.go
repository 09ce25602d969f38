package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Transaction=MockTransactionService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/metrics"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/transaction/model"
	"frontdesk/internal/domains/transaction/model/dto"
	"frontdesk/internal/domains/transaction/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTransaction    = "transaction:get"
	cacheGetAllTransaction = "transaction:gets"
	cacheCountTransaction  = "transaction:count"
)

var errTransactionNotCreated = errors.New("transaction was not created")

type Transaction interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (dto.TransactionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransactionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.TransactionResponse, error)
	GetByBooking(ctx context.Context, bookingID int64) ([]dto.TransactionResponse, error)
	GetByType(ctx context.Context, kind model.Type) ([]dto.TransactionResponse, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByDateRange(ctx context.Context, start, end time.Time) (float64, error)
}

type serviceImpl struct {
	repo    repository.Transaction
	metrics metrics.Metrics
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Transaction, metrics metrics.Metrics, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Transaction {
	return &serviceImpl{
		repo:    repo,
		metrics: metrics,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTransactionRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := s.repo.Create(ctx, req.ToModel(timezone.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to create transaction")

		return res, gRepo.WriteFailure(err)
	}

	if len(created) == 0 {
		return res, errTransactionNotCreated
	}

	transaction := created[0]
	res.FromModel(transaction)

	s.metrics.TransactionRecorded(string(transaction.Type), transaction.Amount)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction, cacheCountTransaction, constant.CachePrefixStatistics)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransaction, req, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transactions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transactions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTransaction, req, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transaction count to cache")
		}
	}()

	return res, nil
}

// Get caches without invalidation since entries never change.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetTransaction, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transaction")

		return res, nil
	}

	transaction, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get transaction")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(transaction)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transaction to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID int64) (res []dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.ByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to get transactions by booking")

		return dto.FromModels(models), fmt.Errorf("failed to get transactions by booking: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) GetByType(ctx context.Context, kind model.Type) (res []dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.ByType(ctx, kind)
	if err != nil {
		log.Error().Err(err).Str("type", string(kind)).Msg("failed to get transactions by type")

		return dto.FromModels(models), fmt.Errorf("failed to get transactions by type: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) TotalRevenue(ctx context.Context) (total float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TotalRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err = s.repo.TotalRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute total revenue")

		return 0, fmt.Errorf("failed to compute total revenue: %w", err)
	}

	return total, nil
}

// RevenueByDateRange sums every entry from the start of the first day to the
// end of the last day.
func (s *serviceImpl) RevenueByDateRange(ctx context.Context, start, end time.Time) (total float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevenueByDateRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to := timezone.DayBounds(start, end)

	total, err = s.repo.RevenueByDateRange(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Time("start", from).Time("end", to).Msg("failed to compute revenue by date range")

		return 0, fmt.Errorf("failed to compute revenue by date range: %w", err)
	}

	return total, nil
}
