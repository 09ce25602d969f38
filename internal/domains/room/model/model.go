package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/infras/recordstore"
	"frontdesk/shared/timezone"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldRoomNumber  = "room_number"
	FieldType        = "type"
	FieldFloor       = "floor"
	FieldCapacity    = "capacity"
	FieldAmenities   = "amenities"
	FieldBaseRate    = "base_rate"
	FieldStatus      = "status"
	FieldLastCleaned = "last_cleaned"
	FieldNotes       = "notes"

	DefaultName = "New Room"
)

var (
	ErrRoomNumberRequired = errors.New("room_number is required")
	ErrInvalidStatus      = errors.New("invalid room status")
	ErrInvalidType        = errors.New("invalid room type")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusCleaning    Status = "cleaning"
	StatusMaintenance Status = "maintenance"
)

// Statuses lists every room status in display order.
var Statuses = []Status{StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeStandard     Type = "Standard"
	TypeDeluxe       Type = "Deluxe"
	TypeSuite        Type = "Suite"
	TypePresidential Type = "Presidential"
)

func (t Type) Valid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite, TypePresidential:
		return true
	default:
		return false
	}
}

type Room struct {
	ID          int64
	Name        string
	RoomNumber  string
	Type        Type
	Floor       int
	Capacity    int
	Amenities   string
	BaseRate    float64
	Status      Status
	LastCleaned time.Time
	Notes       string
}

// Validate rejects rooms the statistics cannot account for.
func (r Room) Validate() error {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return ErrRoomNumberRequired
	}

	if !r.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, r.Status)
	}

	if r.Type != "" && !r.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, r.Type)
	}

	return nil
}

func (r Room) ToRecord() recordstore.Record {
	record := recordstore.Record{
		FieldName:       r.Name,
		FieldRoomNumber: r.RoomNumber,
		FieldType:       string(r.Type),
		FieldFloor:      r.Floor,
		FieldCapacity:   r.Capacity,
		FieldAmenities:  r.Amenities,
		FieldBaseRate:   r.BaseRate,
		FieldStatus:     string(r.Status),
		FieldNotes:      r.Notes,
	}

	if r.ID > 0 {
		record[FieldID] = r.ID
	}

	if !r.LastCleaned.IsZero() {
		record[FieldLastCleaned] = r.LastCleaned
	}

	return record
}

func FromRecord(record recordstore.Record) Room {
	room := Room{
		ID:         record.Int64(FieldID),
		Name:       record.String(FieldName),
		RoomNumber: record.String(FieldRoomNumber),
		Type:       Type(record.String(FieldType)),
		Floor:      record.Int(FieldFloor),
		Capacity:   record.Int(FieldCapacity),
		Amenities:  record.String(FieldAmenities),
		BaseRate:   record.Float64(FieldBaseRate),
		Status:     Status(record.String(FieldStatus)),
		Notes:      record.String(FieldNotes),
	}

	if lastCleaned := record.Time(FieldLastCleaned); !lastCleaned.IsZero() {
		room.LastCleaned = timezone.ToAppTime(lastCleaned)
	}

	return room
}
