package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
)

var errGuestNotCreated = errors.New("guest was not created")

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Search(ctx context.Context, query string, req gDto.QueryParams) (dto.GetGuestsResponse, error)
	GetVIP(ctx context.Context, req gDto.QueryParams) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id int64) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) (dto.GuestResponse, error)
	AddBookingToHistory(ctx context.Context, guestID, bookingID int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, gRepo.WriteFailure(err)
	}

	if len(created) == 0 {
		return res, errGuestNotCreated
	}

	res.FromModel(created[0])

	s.invalidateLists(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

// Search pages through the guests whose name, email or phone contains query.
// A blank query lists every guest.
func (s *serviceImpl) Search(ctx context.Context, query string, req gDto.QueryParams) (dto.GetGuestsResponse, error) {
	filter := gDto.FilterGroup{}
	if query != constant.Empty {
		filter = repository.SearchFilter(query)
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) GetVIP(ctx context.Context, req gDto.QueryParams) (dto.GetGuestsResponse, error) {
	return s.GetAll(ctx, req, repository.VIPFilter())
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get guest")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

// Update keeps the stored display name in step with the name parts.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check guest existence")

		return res, err //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) == 0 {
		res.FromModel(current)

		return res, nil
	}

	if req.FirstName != nil || req.LastName != nil {
		if req.FirstName != nil {
			current.FirstName = *req.FirstName
		}

		if req.LastName != nil {
			current.LastName = *req.LastName
		}

		updatedFields[model.FieldName] = current.Name()
	}

	guest, err := s.repo.Update(ctx, id, updatedFields)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update guest")

		return res, gRepo.WriteFailure(err)
	}

	res.FromModel(guest)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) AddBookingToHistory(ctx context.Context, guestID, bookingID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddBookingToHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.AddBookingToHistory(ctx, guestID, bookingID); err != nil {
		log.Error().Err(err).Int64("guestID", guestID).Int64("bookingID", bookingID).Msg("failed to add booking to guest history")

		return gRepo.WriteFailure(err)
	}

	s.invalidate(ctx, guestID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Get(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check if guest exists")

		return err //nolint:wrapcheck
	}

	if _, err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete guest")

		return gRepo.WriteFailure(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest, cacheCountGuest)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest, cacheCountGuest)
	}()
}
