package model

import (
	"errors"
	"slices"
	"strings"

	"frontdesk/infras/recordstore"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID             = "id"
	FieldName           = "name"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldIDType         = "id_type"
	FieldIDNumber       = "id_number"
	FieldAddress        = "address"
	FieldPreferences    = "preferences"
	FieldVIPStatus      = "vip_status"
	FieldBookingHistory = "booking_history"
)

// SearchFields are matched by a free text guest search.
var SearchFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone}

var ErrFirstNameRequired = errors.New("first_name is required")

type Guest struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	IDType         string
	IDNumber       string
	Address        string
	Preferences    string
	VIPStatus      bool
	BookingHistory []int64
}

// FullName is the display name stored alongside the name parts.
func FullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

func (g Guest) Name() string {
	return FullName(g.FirstName, g.LastName)
}

func (g Guest) Validate() error {
	if strings.TrimSpace(g.FirstName) == "" {
		return ErrFirstNameRequired
	}

	return nil
}

// WithBooking returns the history with bookingID appended once.
func (g Guest) WithBooking(bookingID int64) []int64 {
	if slices.Contains(g.BookingHistory, bookingID) {
		return slices.Clone(g.BookingHistory)
	}

	return append(slices.Clone(g.BookingHistory), bookingID)
}

func (g Guest) ToRecord() recordstore.Record {
	record := recordstore.Record{
		FieldName:           g.Name(),
		FieldFirstName:      g.FirstName,
		FieldLastName:       g.LastName,
		FieldEmail:          g.Email,
		FieldPhone:          g.Phone,
		FieldIDType:         g.IDType,
		FieldIDNumber:       g.IDNumber,
		FieldAddress:        g.Address,
		FieldPreferences:    g.Preferences,
		FieldVIPStatus:      g.VIPStatus,
		FieldBookingHistory: recordstore.JoinInt64List(g.BookingHistory),
	}

	if g.ID > 0 {
		record[FieldID] = g.ID
	}

	return record
}

func FromRecord(record recordstore.Record) Guest {
	return Guest{
		ID:             record.Int64(FieldID),
		FirstName:      record.String(FieldFirstName),
		LastName:       record.String(FieldLastName),
		Email:          record.String(FieldEmail),
		Phone:          record.String(FieldPhone),
		IDType:         record.String(FieldIDType),
		IDNumber:       record.String(FieldIDNumber),
		Address:        record.String(FieldAddress),
		Preferences:    record.String(FieldPreferences),
		VIPStatus:      record.Bool(FieldVIPStatus),
		BookingHistory: record.Int64List(FieldBookingHistory),
	}
}
