package model_test

import (
	"testing"

	"frontdesk/infras/recordstore"
	"frontdesk/internal/domains/guest/model"

	"github.com/stretchr/testify/assert"
)

func TestGuest_ToRecord(t *testing.T) {
	guest := model.Guest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		VIPStatus:      true,
		BookingHistory: []int64{3, 9},
	}

	record := guest.ToRecord()

	assert.Equal(t, "Ada Lovelace", record[model.FieldName])
	assert.Equal(t, "3,9", record[model.FieldBookingHistory])
	assert.Equal(t, true, record[model.FieldVIPStatus])
	assert.NotContains(t, record, model.FieldID)
}

func TestGuest_FromRecord(t *testing.T) {
	guest := model.FromRecord(recordstore.Record{
		"id":              "12",
		"first_name":      "Grace",
		"last_name":       "Hopper",
		"vip_status":      "true",
		"booking_history": "4,,7",
	})

	assert.Equal(t, int64(12), guest.ID)
	assert.Equal(t, "Grace Hopper", guest.Name())
	assert.True(t, guest.VIPStatus)
	assert.Equal(t, []int64{4, 7}, guest.BookingHistory)
}

func TestGuest_Validate(t *testing.T) {
	assert.ErrorIs(t, model.Guest{FirstName: "  "}.Validate(), model.ErrFirstNameRequired)
	assert.NoError(t, model.Guest{FirstName: "Ada"}.Validate())
}

func TestGuest_WithBooking(t *testing.T) {
	guest := model.Guest{BookingHistory: []int64{1, 2}}

	assert.Equal(t, []int64{1, 2, 3}, guest.WithBooking(3))
	assert.Equal(t, []int64{1, 2}, guest.WithBooking(2))
	assert.Equal(t, []int64{1, 2}, guest.BookingHistory)
	assert.Equal(t, "Solo", model.FullName("Solo", ""))
}
