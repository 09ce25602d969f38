package dto

import (
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
)

type CreateGuestRequest struct {
	FirstName   string `json:"first_name"  validate:"required,nonblank,max=128"`
	LastName    string `json:"last_name"   validate:"omitempty,max=128"`
	Email       string `json:"email"       validate:"omitempty,email,max=255"`
	Phone       string `json:"phone"       validate:"omitempty,max=64"`
	IDType      string `json:"id_type"     validate:"omitempty,max=64"`
	IDNumber    string `json:"id_number"   validate:"omitempty,max=128"`
	Address     string `json:"address"     validate:"omitempty,max=500"`
	Preferences string `json:"preferences" validate:"omitempty,max=500"`
	VIPStatus   bool   `json:"vip_status"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		IDType:         c.IDType,
		IDNumber:       c.IDNumber,
		Address:        c.Address,
		Preferences:    c.Preferences,
		VIPStatus:      c.VIPStatus,
		BookingHistory: []int64{},
	}
}

type UpdateGuestRequest struct {
	FirstName   *string `db:"first_name"  json:"first_name"  validate:"omitempty,nonblank,max=128"`
	LastName    *string `db:"last_name"   json:"last_name"   validate:"omitempty,max=128"`
	Email       *string `db:"email"       json:"email"       validate:"omitempty,email,max=255"`
	Phone       *string `db:"phone"       json:"phone"       validate:"omitempty,max=64"`
	IDType      *string `db:"id_type"     json:"id_type"     validate:"omitempty,max=64"`
	IDNumber    *string `db:"id_number"   json:"id_number"   validate:"omitempty,max=128"`
	Address     *string `db:"address"     json:"address"     validate:"omitempty,max=500"`
	Preferences *string `db:"preferences" json:"preferences" validate:"omitempty,max=500"`
	VIPStatus   *bool   `db:"vip_status"  json:"vip_status"`
}

type GuestResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	IDType         string  `json:"id_type"`
	IDNumber       string  `json:"id_number"`
	Address        string  `json:"address"`
	Preferences    string  `json:"preferences"`
	VIPStatus      bool    `json:"vip_status"`
	BookingHistory []int64 `json:"booking_history"`
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.Name = model.Name()
	g.FirstName = model.FirstName
	g.LastName = model.LastName
	g.Email = model.Email
	g.Phone = model.Phone
	g.IDType = model.IDType
	g.IDNumber = model.IDNumber
	g.Address = model.Address
	g.Preferences = model.Preferences
	g.VIPStatus = model.VIPStatus
	g.BookingHistory = model.BookingHistory

	if g.BookingHistory == nil {
		g.BookingHistory = []int64{}
	}
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}
