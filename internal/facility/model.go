package facility

import "time"

type Facility struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	Description  string    `db:"description" json:"description"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	ContactPhone string    `db:"contact_phone" json:"contact_phone"`
	ContactEmail string    `db:"contact_email" json:"contact_email"`
	OpeningHours string    `db:"opening_hours" json:"opening_hours"`
	OwnerID      int64     `db:"owner_id" json:"owner_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CreateFacilityRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Address      string `json:"address" binding:"required,max=200"`
	City         string `json:"city" binding:"max=50"`
	Description  string `json:"description" binding:"max=500"`
	ImageURL     string `json:"image_url"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	OpeningHours string `json:"opening_hours"`
}

// UpdateFacilityRequest copies onto the stored row field by field; the owner
// is never reassigned through an update.
type UpdateFacilityRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Address      string `json:"address" binding:"required,max=200"`
	City         string `json:"city" binding:"max=50"`
	Description  string `json:"description" binding:"max=500"`
	ImageURL     string `json:"image_url"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	OpeningHours string `json:"opening_hours"`
}
