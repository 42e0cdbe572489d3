package dto

import (
	"mime/multipart"
	"time"

	"github.com/Mrithul03/vendroo-server/internal/domains/form/model"
)

// MessageRequiredFields is the static 400 message for incomplete submissions.
// It names every required field rather than the specific missing one.
const MessageRequiredFields = "owner, shopname, businesstype, phone and location are required"

type CreateFormRequest struct {
	Owner        string `validate:"required,max=255"`
	ShopName     string `validate:"required,max=255"`
	BusinessType string `validate:"required,max=255"`
	Phone        string `validate:"required,max=64"`
	Location     string `validate:"required,max=255"`
	Building     string `validate:"omitempty,max=255"`

	Photo     *multipart.FileHeader `validate:"omitempty,maxfilesize=10"`
	PhotoFile multipart.File        `validate:"-"`
}

func (c *CreateFormRequest) ToModel() model.FormEntry {
	return model.FormEntry{
		Owner:        c.Owner,
		ShopName:     c.ShopName,
		BusinessType: c.BusinessType,
		Phone:        c.Phone,
		Location:     c.Location,
		Building:     c.Building,
	}
}

type FormResponse struct {
	ID           int64     `json:"id"`
	Owner        string    `json:"owner"`
	ShopName     string    `json:"shopname"`
	BusinessType string    `json:"businesstype"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Building     string    `json:"building"`
	PhotoURL     *string   `json:"photo_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *FormResponse) FromModel(model model.FormEntry) {
	r.ID = model.ID
	r.Owner = model.Owner
	r.ShopName = model.ShopName
	r.BusinessType = model.BusinessType
	r.Phone = model.Phone
	r.Location = model.Location
	r.Building = model.Building
	r.PhotoURL = model.PhotoURL
	r.CreatedAt = model.CreatedAt
}

func FromModels(models []model.FormEntry) []FormResponse {
	responses := make([]FormResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
