package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/metrics"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	guestService "frontdesk/internal/domains/guest/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

var (
	errBookingNotCreated = errors.New("booking was not created")

	msgInvalidStay = "check_out must be after check_in"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	GetByStatus(ctx context.Context, status model.Status) ([]dto.BookingResponse, error)
	GetByGuest(ctx context.Context, guestID int64) ([]dto.BookingResponse, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]dto.BookingResponse, error)
	TodayArrivals(ctx context.Context) ([]dto.BookingResponse, error)
	TodayDepartures(ctx context.Context) ([]dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id int64) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id int64) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int64) (dto.BookingResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Booking
	rooms    roomService.Room
	guests   guestService.Guest
	notifier notify.Notifier
	metrics  metrics.Metrics
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	rooms roomService.Room,
	guests guestService.Guest,
	notifier notify.Notifier,
	metrics metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		rooms:    rooms,
		guests:   guests,
		notifier: notifier,
		metrics:  metrics,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel(timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.checkStay(ctx, booking); err != nil {
		return res, err
	}

	rate, err := s.roomRate(ctx, booking.RoomID)
	if err != nil {
		return res, err
	}

	booking.TotalAmount = model.TotalAmount(booking.Nights(), rate)

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, gRepo.WriteFailure(err)
	}

	if len(created) == 0 {
		return res, errBookingNotCreated
	}

	booking = created[0]
	res.FromModel(booking)

	s.metrics.BookingCreated(1)
	s.notifier.Success(ctx, model.EntityName, fmt.Sprintf("Booking #%d created", booking.ID))

	if err := s.guests.AddBookingToHistory(ctx, booking.GuestID, booking.ID); err != nil {
		log.Warn().Err(err).Int64("guestID", booking.GuestID).Int64("bookingID", booking.ID).Msg("booking created without guest history entry")
	}

	s.invalidateLists(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByStatus(ctx context.Context, status model.Status) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.ByStatus(ctx, status)
	if err != nil {
		log.Error().Err(err).Str("status", string(status)).Msg("failed to get bookings by status")

		return dto.FromModels(models), fmt.Errorf("failed to get bookings by status: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) GetByGuest(ctx context.Context, guestID int64) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.ByGuest(ctx, guestID)
	if err != nil {
		log.Error().Err(err).Int64("guestID", guestID).Msg("failed to get bookings by guest")

		return dto.FromModels(models), fmt.Errorf("failed to get bookings by guest: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) GetByDateRange(ctx context.Context, start, end time.Time) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDateRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.ByDateRange(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Time("start", start).Time("end", end).Msg("failed to get bookings by date range")

		return dto.FromModels(models), fmt.Errorf("failed to get bookings by date range: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) TodayArrivals(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TodayArrivals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.Arrivals(ctx, timezone.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's arrivals")

		return dto.FromModels(models), fmt.Errorf("failed to get today's arrivals: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) TodayDepartures(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TodayDepartures")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.Departures(ctx, timezone.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's departures")

		return dto.FromModels(models), fmt.Errorf("failed to get today's departures: %w", err)
	}

	return dto.FromModels(models), nil
}

// Update recomputes the total amount when the room or the dates change.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check booking existence")

		return res, err //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) == 0 {
		res.FromModel(current)

		return res, nil
	}

	if req.ChangesStay() {
		stay, err := applyStay(current, req)
		if err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}

		if err = s.checkStay(ctx, stay); err != nil {
			return res, err
		}

		rate, err := s.roomRate(ctx, stay.RoomID)
		if err != nil {
			return res, err
		}

		updatedFields[model.FieldTotalAmount] = model.TotalAmount(stay.Nights(), rate)
	}

	booking, err := s.repo.Update(ctx, id, updatedFields)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		return res, gRepo.WriteFailure(err)
	}

	res.FromModel(booking)

	if req.GuestID != nil && *req.GuestID != current.GuestID {
		if err := s.guests.AddBookingToHistory(ctx, *req.GuestID, booking.ID); err != nil {
			log.Warn().Err(err).Int64("guestID", *req.GuestID).Int64("bookingID", booking.ID).Msg("booking moved without guest history entry")
		}
	}

	s.invalidate(ctx, id)

	return res, nil
}

// UpdateStatus writes status unconditionally unless strict transitions are
// enabled. Room side effects run only when the status actually changes and
// never undo the booking write.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, status model.Status) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.status", string(status))

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check booking existence")

		return res, err //nolint:wrapcheck
	}

	if s.cfg.Booking.StrictTransitions && !model.CanTransition(current.Status, status) {
		return res, failure.Unprocessable(fmt.Sprintf("cannot move booking from %s to %s", current.Status, status)) // nolint:wrapcheck
	}

	booking, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Str("status", string(status)).Msg("failed to update booking status")

		return res, gRepo.WriteFailure(err)
	}

	res.FromModel(booking)

	if current.Status != status {
		s.metrics.BookingTransition(string(current.Status), string(status))
		s.notifier.Success(ctx, model.EntityName, fmt.Sprintf("Booking #%d %s", id, status))

		if roomStatus, ok := model.RoomStatusAfter(current.Status, status); ok {
			s.syncRoom(ctx, booking, roomStatus)
		}
	}

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id int64) (dto.BookingResponse, error) {
	return s.UpdateStatus(ctx, id, model.StatusCheckedIn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id int64) (dto.BookingResponse, error) {
	return s.UpdateStatus(ctx, id, model.StatusCheckedOut)
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (dto.BookingResponse, error) {
	return s.UpdateStatus(ctx, id, model.StatusCancelled)
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Get(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check if booking exists")

		return err //nolint:wrapcheck
	}

	if _, err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

		return gRepo.WriteFailure(err)
	}

	s.invalidate(ctx, id)

	return nil
}

// checkStay applies the opt-in date and overlap rules.
func (s *serviceImpl) checkStay(ctx context.Context, booking model.Booking) error {
	if s.cfg.Booking.StrictDates && !booking.CheckOut.After(booking.CheckIn) {
		return failure.BadRequestFromString(msgInvalidStay) // nolint:wrapcheck
	}

	if !s.cfg.Booking.PreventOverlap {
		return nil
	}

	overlapping, err := s.repo.Overlapping(ctx, booking)
	if err != nil {
		log.Error().Err(err).Int64("roomID", booking.RoomID).Msg("failed to check overlapping bookings")

		return fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if len(overlapping) > 0 {
		return failure.Conflict(fmt.Sprintf("room %d is already booked by booking #%d", booking.RoomID, overlapping[0].ID)) // nolint:wrapcheck
	}

	return nil
}

// roomRate returns the base rate of the room. A missing room prices the
// stay at zero.
func (s *serviceImpl) roomRate(ctx context.Context, roomID int64) (float64, error) {
	room, err := s.rooms.Get(ctx, roomID)
	if failure.IsNotFound(err) {
		log.Warn().Int64("roomID", roomID).Msg("room not found, pricing booking at zero")

		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get room rate: %w", err)
	}

	return room.BaseRate, nil
}

func (s *serviceImpl) syncRoom(ctx context.Context, booking model.Booking, status roomModel.Status) {
	if _, err := s.rooms.UpdateStatus(ctx, booking.RoomID, status); err != nil {
		log.Error().Err(err).Int64("roomID", booking.RoomID).Int64("bookingID", booking.ID).Msg("failed to update room status")

		// store failures are already notified by the room gateway
		if failure.IsNotFound(err) {
			s.notifier.Error(ctx, model.EntityName, fmt.Sprintf("Room %d of booking #%d no longer exists", booking.RoomID, booking.ID))
		}
	}
}

func applyStay(booking model.Booking, req dto.UpdateBookingRequest) (model.Booking, error) {
	if req.RoomID != nil {
		booking.RoomID = *req.RoomID
	}

	if req.CheckIn != nil {
		checkIn, err := timezone.ParseDate(*req.CheckIn)
		if err != nil {
			return booking, err //nolint:wrapcheck
		}

		booking.CheckIn = checkIn
	}

	if req.CheckOut != nil {
		checkOut, err := timezone.ParseDate(*req.CheckOut)
		if err != nil {
			return booking, err //nolint:wrapcheck
		}

		booking.CheckOut = checkOut
	}

	return booking, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking, constant.CachePrefixStatistics)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking, constant.CachePrefixStatistics)
	}()
}
