package dto

import (
	"time"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
)

type CreateRoomRequest struct {
	Name        string     `json:"name"         validate:"omitempty,max=100"`
	RoomNumber  string     `json:"room_number"  validate:"required,nonblank,max=20"`
	Type        string     `json:"type"         validate:"required,oneof=Standard Deluxe Suite Presidential"`
	Floor       int        `json:"floor"        validate:"gte=0"`
	Capacity    int        `json:"capacity"     validate:"gte=0"`
	Amenities   string     `json:"amenities"    validate:"omitempty,max=500"`
	BaseRate    float64    `json:"base_rate"    validate:"gte=0"`
	Status      string     `json:"status"       validate:"omitempty,oneof=available occupied cleaning maintenance"`
	LastCleaned *time.Time `json:"last_cleaned" validate:"omitempty"`
	Notes       string     `json:"notes"        validate:"omitempty,max=500"`
}

// ToModel applies the admin form defaults: name falls back to the room
// number, status to available and last cleaned to now.
func (c *CreateRoomRequest) ToModel(now time.Time) model.Room {
	name := c.Name
	if name == constant.Empty {
		name = c.RoomNumber
	}

	if name == constant.Empty {
		name = model.DefaultName
	}

	status := model.Status(c.Status)
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	lastCleaned := now
	if c.LastCleaned != nil {
		lastCleaned = *c.LastCleaned
	}

	return model.Room{
		Name:        name,
		RoomNumber:  c.RoomNumber,
		Type:        model.Type(c.Type),
		Floor:       c.Floor,
		Capacity:    c.Capacity,
		Amenities:   c.Amenities,
		BaseRate:    c.BaseRate,
		Status:      status,
		LastCleaned: lastCleaned,
		Notes:       c.Notes,
	}
}

type CreateRoomsRequest struct {
	Rooms []CreateRoomRequest `json:"rooms" validate:"required,min=1,max=100,dive"`
}

type UpdateRoomRequest struct {
	Name        *string    `db:"name"         json:"name"         validate:"omitempty,max=100"`
	RoomNumber  *string    `db:"room_number"  json:"room_number"  validate:"omitempty,nonblank,max=20"`
	Type        *string    `db:"type"         json:"type"         validate:"omitempty,oneof=Standard Deluxe Suite Presidential"`
	Floor       *int       `db:"floor"        json:"floor"        validate:"omitempty,gte=0"`
	Capacity    *int       `db:"capacity"     json:"capacity"     validate:"omitempty,gte=0"`
	Amenities   *string    `db:"amenities"    json:"amenities"    validate:"omitempty,max=500"`
	BaseRate    *float64   `db:"base_rate"    json:"base_rate"    validate:"omitempty,gte=0"`
	Status      *string    `db:"status"       json:"status"       validate:"omitempty,oneof=available occupied cleaning maintenance"`
	LastCleaned *time.Time `db:"last_cleaned" json:"last_cleaned" validate:"omitempty"`
	Notes       *string    `db:"notes"        json:"notes"        validate:"omitempty,max=500"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied cleaning maintenance"`
}

type RoomResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	RoomNumber  string     `json:"room_number"`
	Type        string     `json:"type"`
	Floor       int        `json:"floor"`
	Capacity    int        `json:"capacity"`
	Amenities   string     `json:"amenities"`
	BaseRate    float64    `json:"base_rate"`
	Status      string     `json:"status"`
	LastCleaned *time.Time `json:"last_cleaned,omitempty"`
	Notes       string     `json:"notes"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomNumber = model.RoomNumber
	r.Type = string(model.Type)
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.BaseRate = model.BaseRate
	r.Status = string(model.Status)
	r.Notes = model.Notes

	if !model.LastCleaned.IsZero() {
		lastCleaned := model.LastCleaned
		r.LastCleaned = &lastCleaned
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// CreateRoomsResponse reports a partially applied batch: the rooms that
// were written and the reasons for the ones that were not.
type CreateRoomsResponse struct {
	Rooms  []RoomResponse `json:"rooms"`
	Failed int            `json:"failed"`
	Errors []string       `json:"errors,omitempty"`
}
