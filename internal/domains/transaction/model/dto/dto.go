package dto

import (
	"time"

	"frontdesk/internal/domains/transaction/model"
	"frontdesk/shared"
)

type CreateTransactionRequest struct {
	BookingID     int64   `json:"booking_id"     validate:"omitempty,gt=0"`
	Amount        float64 `json:"amount"         validate:"required"`
	Type          string  `json:"type"           validate:"required,oneof=booking refund other"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=64"`
	Description   string  `json:"description"    validate:"omitempty,max=500"`
}

// ToModel stamps the entry with now. Client supplied timestamps are not
// accepted.
func (c *CreateTransactionRequest) ToModel(now time.Time) model.Transaction {
	return model.Transaction{
		BookingID:     c.BookingID,
		Amount:        c.Amount,
		Type:          model.Type(c.Type),
		PaymentMethod: c.PaymentMethod,
		Timestamp:     now,
		Description:   c.Description,
	}
}

type TransactionResponse struct {
	ID            int64     `json:"id"`
	BookingID     *int64    `json:"booking_id"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	PaymentMethod string    `json:"payment_method"`
	Timestamp     time.Time `json:"timestamp"`
	Description   string    `json:"description"`
}

func (r *TransactionResponse) FromModel(model model.Transaction) {
	r.ID = model.ID
	r.BookingID = nil
	r.Amount = model.Amount
	r.Type = string(model.Type)
	r.PaymentMethod = model.PaymentMethod
	r.Timestamp = model.Timestamp
	r.Description = model.Description

	if model.BookingID > 0 {
		bookingID := model.BookingID
		r.BookingID = &bookingID
	}
}

func FromModels(models []model.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.Transaction, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Transactions = FromModels(models)
}

// Unpaged wraps a complete listing as a single page.
func Unpaged(transactions []TransactionResponse) GetTransactionsResponse {
	res := GetTransactionsResponse{Transactions: transactions, TotalData: len(transactions)}
	if len(transactions) > 0 {
		res.TotalPage = 1
	}

	return res
}

type RevenueResponse struct {
	Total float64 `json:"total"`
}
