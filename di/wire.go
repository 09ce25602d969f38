//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/metrics"
	"frontdesk/infras/otel"
	"frontdesk/infras/recordstore"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/infras/scheduler"
	"frontdesk/internal/jobs"
	"frontdesk/shared/cache"
	"frontdesk/shared/notify"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	statisticsService "frontdesk/internal/domains/statistics/service"
	transactionRepository "frontdesk/internal/domains/transaction/repository"
	transactionService "frontdesk/internal/domains/transaction/service"

	bookingHandler "frontdesk/internal/handlers/booking"
	guestHandler "frontdesk/internal/handlers/guest"
	roomHandler "frontdesk/internal/handlers/room"
	statisticsHandler "frontdesk/internal/handlers/statistics"
	transactionHandler "frontdesk/internal/handlers/transaction"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	recordstore.New,
	provideKafka,
	metrics.New,
	s3.New,
	scheduler.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notify.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var transactionDomain = wire.NewSet(
	transactionRepository.New,
	transactionService.New,
)

var statisticsDomain = wire.NewSet(
	statisticsService.New,
	jobs.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	transactionDomain,
	statisticsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	transactionHandler.New,
	statisticsHandler.New,
	router.New,
)

func InitializeApp() (*App, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil, nil
}
