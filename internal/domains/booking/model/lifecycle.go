package model

import (
	"math"
	"slices"
	"time"

	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
)

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal statuses have no outgoing transitions.
func (s Status) Terminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

var transitions = map[Status][]Status{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
}

// CanTransition reports whether the lifecycle allows moving from one status
// to another. Writing the current status again is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return to.Valid()
	}

	return slices.Contains(transitions[from], to)
}

// Nights counts started 24 hour periods between check-in and check-out.
// Both ends are compared by their wall clock so daylight saving shifts do
// not add or drop a night. Same-day stays have zero nights and inverted
// ranges a negative count.
func Nights(checkIn, checkOut time.Time) int {
	hours := wallClock(checkOut).Sub(wallClock(checkIn)).Hours()

	return int(math.Ceil(hours / constant.HoursPerDay))
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func TotalAmount(nights int, baseRate float64) float64 {
	return float64(nights) * baseRate
}

// RoomStatusAfter returns the room status a booking status change implies.
func RoomStatusAfter(from, to Status) (roomModel.Status, bool) {
	if from == to {
		return "", false
	}

	switch {
	case to == StatusCheckedIn:
		return roomModel.StatusOccupied, true
	case to == StatusCheckedOut:
		return roomModel.StatusCleaning, true
	case to == StatusCancelled && from == StatusCheckedIn:
		return roomModel.StatusCleaning, true
	default:
		return "", false
	}
}
