package dto_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2024-01-01", CheckOut: "2024-01-03"}

	booking, err := req.ToModel(now)

	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, 1, booking.NumberOfGuests)
	assert.Equal(t, 2, booking.Nights())
	assert.Equal(t, now, booking.CreatedAt)
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{name: "valid", req: dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2024-01-01", CheckOut: "2024-01-03"}},
		{name: "missing guest", req: dto.CreateBookingRequest{RoomID: 2, CheckIn: "2024-01-01", CheckOut: "2024-01-03"}, wantErr: true},
		{name: "bad date", req: dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "01/01/2024", CheckOut: "2024-01-03"}, wantErr: true},
		{name: "unknown payment status", req: dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2024-01-01", CheckOut: "2024-01-03", PaymentStatus: "owed"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBookingRequest_ChangesStay(t *testing.T) {
	checkOut := "2024-02-02"
	requests := "late arrival"

	assert.True(t, (&dto.UpdateBookingRequest{CheckOut: &checkOut}).ChangesStay())
	assert.False(t, (&dto.UpdateBookingRequest{SpecialRequests: &requests}).ChangesStay())
}

func TestBookingResponse_FromModel(t *testing.T) {
	loc := timezone.GetLocation()

	var res dto.BookingResponse

	res.FromModel(model.Booking{
		ID:       3,
		CheckIn:  time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
		CheckOut: time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
		Status:   model.StatusCheckedIn,
	})

	assert.Equal(t, "2024-03-01", res.CheckIn)
	assert.Equal(t, "2024-03-04", res.CheckOut)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "checked-in", res.Status)
}

func TestUnpaged(t *testing.T) {
	empty := dto.Unpaged([]dto.BookingResponse{})
	assert.Equal(t, 0, empty.TotalPage)
	assert.Equal(t, 0, empty.TotalData)

	listed := dto.Unpaged([]dto.BookingResponse{{ID: 1}, {ID: 2}})
	assert.Equal(t, 1, listed.TotalPage)
	assert.Equal(t, 2, listed.TotalData)
}
