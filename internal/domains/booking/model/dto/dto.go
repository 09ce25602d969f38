package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

type CreateBookingRequest struct {
	GuestID         int64  `json:"guest_id"         validate:"required,gt=0"`
	RoomID          int64  `json:"room_id"          validate:"required,gt=0"`
	CheckIn         string `json:"check_in"         validate:"required,dateonly"`
	CheckOut        string `json:"check_out"        validate:"required,dateonly"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"omitempty,gte=1,lte=20"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
	PaymentStatus   string `json:"payment_status"   validate:"omitempty,oneof=pending partial paid"`
}

// ToModel builds a confirmed booking. Total amount is left to the caller
// since it depends on the room rate.
func (c *CreateBookingRequest) ToModel(now time.Time) (model.Booking, error) {
	checkIn, err := timezone.ParseDate(c.CheckIn)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(c.CheckOut)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	guests := c.NumberOfGuests
	if guests == 0 {
		guests = 1
	}

	payment := model.PaymentStatus(c.PaymentStatus)
	if payment == constant.Empty {
		payment = model.PaymentPending
	}

	return model.Booking{
		GuestID:         c.GuestID,
		RoomID:          c.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  guests,
		Status:          model.StatusConfirmed,
		SpecialRequests: c.SpecialRequests,
		PaymentStatus:   payment,
		CreatedAt:       now,
	}, nil
}

type UpdateBookingRequest struct {
	GuestID         *int64  `db:"guest_id"         json:"guest_id"         validate:"omitempty,gt=0"`
	RoomID          *int64  `db:"room_id"          json:"room_id"          validate:"omitempty,gt=0"`
	CheckIn         *string `db:"check_in"         json:"check_in"         validate:"omitempty,dateonly"`
	CheckOut        *string `db:"check_out"        json:"check_out"        validate:"omitempty,dateonly"`
	NumberOfGuests  *int    `db:"number_of_guests" json:"number_of_guests" validate:"omitempty,gte=1,lte=20"`
	SpecialRequests *string `db:"special_requests" json:"special_requests" validate:"omitempty,max=1000"`
	PaymentStatus   *string `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=pending partial paid"`
}

// ChangesStay reports whether the update moves the booking to another room
// or other dates, which changes its total amount.
func (u *UpdateBookingRequest) ChangesStay() bool {
	return u.RoomID != nil || u.CheckIn != nil || u.CheckOut != nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed checked-in checked-out cancelled"`
}

type BookingResponse struct {
	ID              int64     `json:"id"`
	GuestID         int64     `json:"guest_id"`
	RoomID          int64     `json:"room_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Nights          int       `json:"nights"`
	NumberOfGuests  int       `json:"number_of_guests"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckIn = timezone.FormatDate(model.CheckIn)
	r.CheckOut = timezone.FormatDate(model.CheckOut)
	r.Nights = model.Nights()
	r.NumberOfGuests = model.NumberOfGuests
	r.TotalAmount = model.TotalAmount
	r.Status = string(model.Status)
	r.SpecialRequests = model.SpecialRequests
	r.PaymentStatus = string(model.PaymentStatus)
	r.CreatedAt = model.CreatedAt
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bookings = FromModels(models)
}

// Unpaged wraps a complete listing as a single page.
func Unpaged(bookings []BookingResponse) GetBookingsResponse {
	res := GetBookingsResponse{Bookings: bookings, TotalData: len(bookings)}
	if len(bookings) > 0 {
		res.TotalPage = 1
	}

	return res
}
