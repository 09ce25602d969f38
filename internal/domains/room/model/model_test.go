package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"frontdesk/infras/recordstore"
	"frontdesk/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestRoom_Validate(t *testing.T) {
	tests := []struct {
		name    string
		room    model.Room
		wantErr error
	}{
		{
			name: "valid room",
			room: model.Room{RoomNumber: "101", Type: model.TypeSuite, Status: model.StatusAvailable},
		},
		{
			name:    "missing room number",
			room:    model.Room{RoomNumber: " ", Status: model.StatusAvailable},
			wantErr: model.ErrRoomNumberRequired,
		},
		{
			name:    "unknown status",
			room:    model.Room{RoomNumber: "101", Status: "haunted"},
			wantErr: model.ErrInvalidStatus,
		},
		{
			name:    "unknown type",
			room:    model.Room{RoomNumber: "101", Type: "Closet", Status: model.StatusCleaning},
			wantErr: model.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.room.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRoom_FromRecordCoercesWireValues(t *testing.T) {
	room := model.FromRecord(recordstore.Record{
		"id":           json.Number("12"),
		"room_number":  "305",
		"type":         "Deluxe",
		"floor":        "3",
		"capacity":     float64(2),
		"base_rate":    "180.50",
		"status":       "occupied",
		"last_cleaned": "2024-05-01T08:00:00Z",
	})

	assert.Equal(t, int64(12), room.ID)
	assert.Equal(t, 3, room.Floor)
	assert.Equal(t, 2, room.Capacity)
	assert.InDelta(t, 180.5, room.BaseRate, 0.001)
	assert.Equal(t, model.StatusOccupied, room.Status)
	assert.Equal(t, model.TypeDeluxe, room.Type)
	assert.True(t, room.LastCleaned.Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)))
}

func TestRoom_ToRecordOmitsUnsetValues(t *testing.T) {
	record := model.Room{RoomNumber: "101", Status: model.StatusAvailable}.ToRecord()

	assert.False(t, record.Has(model.FieldID))
	assert.False(t, record.Has(model.FieldLastCleaned))
	assert.Equal(t, "available", record[model.FieldStatus])
}
