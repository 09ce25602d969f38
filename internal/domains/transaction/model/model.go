package model

import (
	"errors"
	"fmt"
	"time"

	"frontdesk/infras/recordstore"
	"frontdesk/shared/timezone"
)

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldType          = "type"
	FieldPaymentMethod = "payment_method"
	FieldTimestamp     = "timestamp"
	FieldDescription   = "description"
)

var (
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrTimestampRequired = errors.New("timestamp is required")
)

type Type string

const (
	TypeBooking Type = "booking"
	TypeRefund  Type = "refund"
	TypeOther   Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeBooking, TypeRefund, TypeOther:
		return true
	default:
		return false
	}
}

// Transaction is an entry of the append-only ledger. BookingID is zero for
// entries not tied to a booking.
type Transaction struct {
	ID            int64
	BookingID     int64
	Amount        float64
	Type          Type
	PaymentMethod string
	Timestamp     time.Time
	Description   string
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}

	if t.Timestamp.IsZero() {
		return ErrTimestampRequired
	}

	return nil
}

// IsRevenue reports whether the entry counts toward booking revenue.
func (t Transaction) IsRevenue() bool {
	return t.Type == TypeBooking
}

func (t Transaction) ToRecord() recordstore.Record {
	record := recordstore.Record{
		FieldAmount:        t.Amount,
		FieldType:          string(t.Type),
		FieldPaymentMethod: t.PaymentMethod,
		FieldTimestamp:     t.Timestamp,
		FieldDescription:   t.Description,
	}

	if t.ID > 0 {
		record[FieldID] = t.ID
	}

	if t.BookingID > 0 {
		record[FieldBookingID] = t.BookingID
	}

	return record
}

func FromRecord(record recordstore.Record) Transaction {
	transaction := Transaction{
		ID:            record.Int64(FieldID),
		BookingID:     record.Int64(FieldBookingID),
		Amount:        record.Float64(FieldAmount),
		Type:          Type(record.String(FieldType)),
		PaymentMethod: record.String(FieldPaymentMethod),
		Description:   record.String(FieldDescription),
	}

	if timestamp := record.Time(FieldTimestamp); !timestamp.IsZero() {
		transaction.Timestamp = timezone.ToAppTime(timestamp)
	}

	return transaction
}

// Sum adds up the amounts of the entries accepted by keep. A nil keep
// accepts every entry.
func Sum(transactions []Transaction, keep func(Transaction) bool) float64 {
	var total float64

	for _, transaction := range transactions {
		if keep == nil || keep(transaction) {
			total += transaction.Amount
		}
	}

	return total
}
