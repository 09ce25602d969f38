// Package model holds the pure statistics aggregations. Nothing here talks
// to the record store: callers load the collections and pass them in.
package model

import (
	"math"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	roomModel "frontdesk/internal/domains/room/model"
	transactionModel "frontdesk/internal/domains/transaction/model"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type RoomStats struct {
	Total         int
	Occupied      int
	Available     int
	Cleaning      int
	Maintenance   int
	OccupancyRate float64
}

// Counts returns the per status counts keyed by status name.
func (s RoomStats) Counts() map[string]int {
	return map[string]int{
		string(roomModel.StatusAvailable):   s.Available,
		string(roomModel.StatusOccupied):    s.Occupied,
		string(roomModel.StatusCleaning):    s.Cleaning,
		string(roomModel.StatusMaintenance): s.Maintenance,
	}
}

type DailyRevenue struct {
	Date   time.Time
	Amount float64
}

type Dashboard struct {
	Rooms        RoomStats
	Arrivals     []bookingModel.Booking
	Departures   []bookingModel.Booking
	TotalRevenue float64
	Trailing     []DailyRevenue
	GeneratedAt  time.Time
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// ComputeRoomStats counts rooms per status. Rooms whose stored status is not
// one of the four known ones are left out of every count, the total
// included. The occupancy rate is the occupied share in percent and zero for
// an empty hotel.
func ComputeRoomStats(rooms []roomModel.Room) RoomStats {
	var stats RoomStats

	for _, room := range rooms {
		switch room.Status {
		case roomModel.StatusOccupied:
			stats.Occupied++
		case roomModel.StatusAvailable:
			stats.Available++
		case roomModel.StatusCleaning:
			stats.Cleaning++
		case roomModel.StatusMaintenance:
			stats.Maintenance++
		default:
			log.Warn().Int64("roomID", room.ID).Str("status", string(room.Status)).Msg("room has unknown status, skipped in statistics")

			continue
		}

		stats.Total++
	}

	if stats.Total > 0 {
		stats.OccupancyRate = Round1(float64(stats.Occupied) / float64(stats.Total) * 100)
	}

	return stats
}

// TrailingRevenue returns one bucket per calendar day for the days ending
// with today, oldest first. Only booking entries count.
func TrailingRevenue(transactions []transactionModel.Transaction, today time.Time, days int) []DailyRevenue {
	if days <= 0 {
		return []DailyRevenue{}
	}

	loc := timezone.GetLocation()
	end := timezone.StartOfDay(today, loc)
	start := end.AddDate(0, 0, -(days - 1))

	series := make([]DailyRevenue, days)
	for i := range series {
		series[i].Date = start.AddDate(0, 0, i)
	}

	for _, transaction := range transactions {
		if !transaction.IsRevenue() {
			continue
		}

		day := timezone.StartOfDay(transaction.Timestamp, loc)

		for i := range series {
			if series[i].Date.Equal(day) {
				series[i].Amount += transaction.Amount

				break
			}
		}
	}

	return series
}
