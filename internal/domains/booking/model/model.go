package model

import (
	"errors"
	"fmt"
	"time"

	"frontdesk/infras/recordstore"
	"frontdesk/shared/timezone"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldNumberOfGuests  = "number_of_guests"
	FieldTotalAmount     = "total_amount"
	FieldStatus          = "status"
	FieldSpecialRequests = "special_requests"
	FieldPaymentStatus   = "payment_status"
	FieldCreatedAt       = "created_at"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrDatesRequired        = errors.New("check_in and check_out are required")
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID              int64
	GuestID         int64
	RoomID          int64
	CheckIn         time.Time
	CheckOut        time.Time
	NumberOfGuests  int
	TotalAmount     float64
	Status          Status
	SpecialRequests string
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
}

func (b Booking) Validate() error {
	if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
		return ErrDatesRequired
	}

	if !b.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, b.Status)
	}

	if !b.PaymentStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, b.PaymentStatus)
	}

	return nil
}

// Nights is the number of nights between check-in and check-out.
func (b Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// Overlaps reports whether both bookings hold the same room on a common
// night. A check-out on the other's check-in day does not overlap.
func (b Booking) Overlaps(other Booking) bool {
	return b.RoomID == other.RoomID &&
		b.CheckIn.Before(other.CheckOut) &&
		other.CheckIn.Before(b.CheckOut)
}

func (b Booking) ToRecord() recordstore.Record {
	record := recordstore.Record{
		FieldGuestID:         b.GuestID,
		FieldRoomID:          b.RoomID,
		FieldCheckIn:         timezone.FormatDate(b.CheckIn),
		FieldCheckOut:        timezone.FormatDate(b.CheckOut),
		FieldNumberOfGuests:  b.NumberOfGuests,
		FieldTotalAmount:     b.TotalAmount,
		FieldStatus:          string(b.Status),
		FieldSpecialRequests: b.SpecialRequests,
		FieldPaymentStatus:   string(b.PaymentStatus),
	}

	if b.ID > 0 {
		record[FieldID] = b.ID
	}

	if !b.CreatedAt.IsZero() {
		record[FieldCreatedAt] = b.CreatedAt
	}

	return record
}

func FromRecord(record recordstore.Record) Booking {
	loc := timezone.GetLocation()

	booking := Booking{
		ID:              record.Int64(FieldID),
		GuestID:         record.Int64(FieldGuestID),
		RoomID:          record.Int64(FieldRoomID),
		CheckIn:         record.Date(FieldCheckIn, loc),
		CheckOut:        record.Date(FieldCheckOut, loc),
		NumberOfGuests:  record.Int(FieldNumberOfGuests),
		TotalAmount:     record.Float64(FieldTotalAmount),
		Status:          Status(record.String(FieldStatus)),
		SpecialRequests: record.String(FieldSpecialRequests),
		PaymentStatus:   PaymentStatus(record.String(FieldPaymentStatus)),
	}

	if createdAt := record.Time(FieldCreatedAt); !createdAt.IsZero() {
		booking.CreatedAt = timezone.ToAppTime(createdAt)
	}

	return booking
}
