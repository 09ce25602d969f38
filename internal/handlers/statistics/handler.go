package statistics

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/statistics/model/dto"
	"frontdesk/internal/domains/statistics/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/request"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Statistics
	otel    otel.Otel
}

func New(service service.Statistics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/statistics", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms", handler.GetRoomStats)
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/revenue/trailing", handler.GetTrailingRevenue)
		routerGroup.Post("/revenue/export", handler.ExportRevenue)
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetRoomStats returns room counts per status and the occupancy rate.
// @Summary Get room statistics
// @Description Count rooms by status. The occupancy rate is a percentage with one decimal.
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Data[dto.RoomStatsResponse] "Room statistics"
// @Failure 500 {object} response.Error "Room store unavailable. No zero-count fallback is served"
// @Router /v1/statistics/rooms [get]
func (handler *Handler) GetRoomStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStats")
	defer scope.End()

	stats, err := handler.service.RoomStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room statistics")

		response.WithError(w, err)

		return
	}

	response.WithOK(w, stats)
}

// GetRevenue returns the booking revenue, or the revenue of every entry
// between two dates when start and end are given.
// @Summary Get revenue
// @Description Total booking revenue, or all entries between start and end inclusive.
// @Tags Statistics
// @Produce json
// @Param start query string false "First day (YYYY-MM-DD)"
// @Param end query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueResponse] "Revenue"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/statistics/revenue [get]
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	var revenue dto.RevenueResponse

	start, end, ok, err := request.DateRange(r)
	if err == nil {
		if ok {
			revenue, err = handler.service.RevenueByDateRange(ctx, start, end)
		} else {
			revenue, err = handler.service.TotalRevenue(ctx)
		}
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue")

		response.WithError(w, err)

		return
	}

	response.WithOK(w, revenue)
}

// GetTrailingRevenue returns the booking revenue of each of the last days,
// oldest first.
// @Summary Get trailing daily revenue
// @Description Booking revenue per day for the trailing week, today included.
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Data[[]dto.DailyRevenueResponse] "Daily revenue"
// @Failure 500 {object} response.Error
// @Router /v1/statistics/revenue/trailing [get]
func (handler *Handler) GetTrailingRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrailingRevenue")
	defer scope.End()

	series, err := handler.service.TrailingRevenue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trailing revenue")

		response.WithError(w, err)

		return
	}

	response.WithOK(w, series)
}

// ExportRevenue uploads a CSV report of the entries between two dates.
// @Summary Export a revenue report
// @Description Write the ledger entries between start and end to a CSV file in object storage.
// @Tags Statistics
// @Accept json
// @Produce json
// @Param request body dto.ExportRevenueRequest true "Report range"
// @Success 201 {object} response.Data[dto.ExportRevenueResponse] "Uploaded report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/statistics/revenue/export [post]
func (handler *Handler) ExportRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportRevenue")
	defer scope.End()

	var req dto.ExportRevenueRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	// both parse: the dateonly tag already checked them
	start, _ := timezone.ParseDate(req.Start)
	end, _ := timezone.ParseDate(req.End)

	report, err := handler.service.ExportRevenue(ctx, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report exported to " + report.FileName)

	response.WithCreated(w, report)
}

// GetDashboard returns the front desk dashboard.
// @Summary Get the dashboard
// @Description Room statistics, today's arrivals and departures, and revenue. Served from cache when fresh.
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard"
// @Failure 500 {object} response.Error "A dashboard part failed to load. No zero-stats fallback is served"
// @Router /v1/statistics/dashboard [get]
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithOK(w, dashboard)
}
