package model

import "time"

const (
	TableName  = "form_entries"
	EntityName = "form entry"

	FieldID           = "id"
	FieldOwner        = "owner"
	FieldShopName     = "shopname"
	FieldBusinessType = "businesstype"
	FieldPhone        = "phone"
	FieldLocation     = "location"
	FieldBuilding     = "building"
	FieldPhotoURL     = "photo_url"
)

// FormEntry is a shop-registration submission. Rows are insert-only: never
// updated or deleted, read back newest first.
type FormEntry struct {
	ID           int64     `db:"id"`
	Owner        string    `db:"owner"`
	ShopName     string    `db:"shopname"`
	BusinessType string    `db:"businesstype"`
	Phone        string    `db:"phone"`
	Location     string    `db:"location"`
	Building     string    `db:"building"`
	PhotoURL     *string   `db:"photo_url"`
	CreatedAt    time.Time `db:"created_at"`
}
