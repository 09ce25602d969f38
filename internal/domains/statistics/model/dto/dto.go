package dto

import (
	"time"

	bookingDto "frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/statistics/model"
	"frontdesk/shared/timezone"
)

type RoomStatsResponse struct {
	Total         int     `json:"total"`
	Occupied      int     `json:"occupied"`
	Available     int     `json:"available"`
	Cleaning      int     `json:"cleaning"`
	Maintenance   int     `json:"maintenance"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

func (r *RoomStatsResponse) FromModel(stats model.RoomStats) {
	r.Total = stats.Total
	r.Occupied = stats.Occupied
	r.Available = stats.Available
	r.Cleaning = stats.Cleaning
	r.Maintenance = stats.Maintenance
	r.OccupancyRate = stats.OccupancyRate
}

type RevenueResponse struct {
	Total float64 `json:"total"`
	Start string  `json:"start,omitempty"`
	End   string  `json:"end,omitempty"`
}

type DailyRevenueResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

func FromSeries(series []model.DailyRevenue) []DailyRevenueResponse {
	res := make([]DailyRevenueResponse, len(series))
	for i, day := range series {
		res[i] = DailyRevenueResponse{Date: timezone.FormatDate(day.Date), Amount: day.Amount}
	}

	return res
}

type DashboardResponse struct {
	Rooms        RoomStatsResponse            `json:"rooms"`
	Arrivals     []bookingDto.BookingResponse `json:"arrivals"`
	Departures   []bookingDto.BookingResponse `json:"departures"`
	TotalRevenue float64                      `json:"total_revenue"`
	Trailing     []DailyRevenueResponse       `json:"trailing_revenue"`
	GeneratedAt  time.Time                    `json:"generated_at"`
}

func (r *DashboardResponse) FromModel(dashboard model.Dashboard) {
	r.Rooms.FromModel(dashboard.Rooms)
	r.Arrivals = bookingDto.FromModels(dashboard.Arrivals)
	r.Departures = bookingDto.FromModels(dashboard.Departures)
	r.TotalRevenue = dashboard.TotalRevenue
	r.Trailing = FromSeries(dashboard.Trailing)
	r.GeneratedAt = dashboard.GeneratedAt
}

type ExportRevenueRequest struct {
	Start string `json:"start" validate:"required,dateonly"`
	End   string `json:"end"   validate:"required,dateonly"`
}

type ExportRevenueResponse struct {
	URL      string  `json:"url"`
	FileName string  `json:"file_name"`
	Rows     int     `json:"rows"`
	Total    float64 `json:"total"`
}
