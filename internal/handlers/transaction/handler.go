package transaction

import (
	"context"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/transaction/model"
	"frontdesk/internal/domains/transaction/model/dto"
	"frontdesk/internal/domains/transaction/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/request"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Transaction
	otel    otel.Otel
}

func New(service service.Transaction, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTransaction)
		routerGroup.Get("/", handler.GetTransactions)
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/{id}", handler.GetTransactionByID)
	})
}

// CreateTransaction records a ledger entry.
// @Summary Record a transaction
// @Description Append an entry to the ledger. The timestamp is set by the server.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} response.Data[dto.TransactionResponse] "Recorded transaction"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [post]
func (handler *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransaction")
	defer scope.End()

	var req dto.CreateTransactionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	transaction, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction recorded successfully")

	response.WithCreated(w, transaction)
}

// GetTransactions lists ledger entries, for one booking or of one type when
// booking_id or type is given.
// @Summary Get all transactions
// @Description Retrieve ledger entries with optional booking or type filter.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query integer false "Filter by booking"
// @Param type query string false "Filter by type" Enums(booking, refund, other)
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "List of transactions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [get]
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	transactions, err := handler.listTransactions(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithOK(w, transactions)
}

func (handler *Handler) listTransactions(ctx context.Context, r *http.Request) (dto.GetTransactionsResponse, error) {
	bookingID, err := request.QueryInt64(r, constant.RequestParamBookingID)
	if err != nil {
		return dto.GetTransactionsResponse{}, err //nolint:wrapcheck
	}

	if bookingID != nil {
		transactions, err := handler.service.GetByBooking(ctx, *bookingID)

		return dto.Unpaged(transactions), err
	}

	if kind := r.URL.Query().Get(constant.RequestParamType); kind != constant.Empty {
		if !model.Type(kind).Valid() {
			return dto.GetTransactionsResponse{}, failure.BadRequestFromString("invalid type parameter")
		}

		transactions, err := handler.service.GetByType(ctx, model.Type(kind))

		return dto.Unpaged(transactions), err
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	return handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{}) //nolint:wrapcheck
}

// GetRevenue sums booking revenue, or every entry from the start day to the
// end day inclusive when both are given.
// @Summary Get ledger revenue
// @Description Sum booking entries, or all entries in a date range.
// @Tags Transaction
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueResponse] "Revenue"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/revenue [get]
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	var res dto.RevenueResponse

	start, end, ok, err := request.DateRange(r)
	if err == nil {
		if ok {
			res.Total, err = handler.service.RevenueByDateRange(ctx, start, end)
		} else {
			res.Total, err = handler.service.TotalRevenue(ctx)
		}
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue")

		response.WithError(w, err)

		return
	}

	response.WithOK(w, res)
}

// GetTransactionByID retrieves a ledger entry by its ID.
// @Summary Get a transaction by ID
// @Description Retrieve a ledger entry by its unique identifier.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path integer true "Transaction ID"
// @Success 200 {object} response.Data[dto.TransactionResponse] "Transaction details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [get]
func (handler *Handler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactionByID")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	transaction, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get transaction by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction retrieved successfully")

	response.WithOK(w, transaction)
}
