package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"frontdesk/internal/domains/transaction/model"
	"frontdesk/shared/constant"
)

var reportHeader = []string{"id", "timestamp", "type", "booking_id", "payment_method", "amount", "description"}

// revenueReport renders the entries as CSV followed by one total row per
// type and a grand total.
func revenueReport(transactions []model.Transaction) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	totals := map[model.Type]float64{}

	for _, transaction := range transactions {
		bookingID := constant.Empty
		if transaction.BookingID > 0 {
			bookingID = strconv.FormatInt(transaction.BookingID, 10)
		}

		row := []string{
			strconv.FormatInt(transaction.ID, 10),
			transaction.Timestamp.Format(time.RFC3339),
			string(transaction.Type),
			bookingID,
			transaction.PaymentMethod,
			formatAmount(transaction.Amount),
			transaction.Description,
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}

		totals[transaction.Type] += transaction.Amount
	}

	summary := [][]string{
		{},
		{"total_booking", formatAmount(totals[model.TypeBooking])},
		{"total_refund", formatAmount(totals[model.TypeRefund])},
		{"total_other", formatAmount(totals[model.TypeOther])},
		{"total", formatAmount(model.Sum(transactions, nil))},
	}

	if err := writer.WriteAll(summary); err != nil {
		return nil, fmt.Errorf("failed to write report totals: %w", err)
	}

	return buf.Bytes(), nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
