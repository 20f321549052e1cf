package equipment

import "time"

type EquipmentType string

const (
	TypeRacket    EquipmentType = "RACKET"
	TypeBall      EquipmentType = "BALL"
	TypeApparel   EquipmentType = "APPAREL"
	TypeAccessory EquipmentType = "ACCESSORY"
	TypeFood      EquipmentType = "FOOD"
	TypeDrink     EquipmentType = "DRINK"
	TypeOther     EquipmentType = "OTHER"
)

// ValidType reports whether t is one of the equipment categories.
func ValidType(t EquipmentType) bool {
	switch t {
	case TypeRacket, TypeBall, TypeApparel, TypeAccessory, TypeFood, TypeDrink, TypeOther:
		return true
	}
	return false
}

type Equipment struct {
	ID                   int64         `db:"id" json:"id"`
	Name                 string        `db:"name" json:"name"`
	Description          string        `db:"description" json:"description"`
	ImageURL             string        `db:"image_url" json:"image_url"`
	Type                 EquipmentType `db:"type" json:"type"`
	PurchasePrice        float64       `db:"purchase_price" json:"purchase_price"`
	RentalPrice          *float64      `db:"rental_price" json:"rental_price,omitempty"`
	StockQuantity        int           `db:"stock_quantity" json:"stock_quantity"`
	AvailableForPurchase bool          `db:"available_for_purchase" json:"available_for_purchase"`
	AvailableForRental   bool          `db:"available_for_rental" json:"available_for_rental"`
	FacilityID           int64         `db:"facility_id" json:"facility_id"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
}

type CreateEquipmentRequest struct {
	Name                 string        `json:"name" binding:"required,min=1,max=100"`
	Description          string        `json:"description" binding:"max=500"`
	ImageURL             string        `json:"image_url" binding:"omitempty,url"`
	Type                 EquipmentType `json:"type" binding:"required,oneof=RACKET BALL APPAREL ACCESSORY FOOD DRINK OTHER"`
	PurchasePrice        float64       `json:"purchase_price" binding:"required,gt=0"`
	RentalPrice          *float64      `json:"rental_price" binding:"omitempty,gt=0"`
	StockQuantity        int           `json:"stock_quantity" binding:"gte=0"`
	AvailableForPurchase bool          `json:"available_for_purchase"`
	AvailableForRental   bool          `json:"available_for_rental"`
}

type UpdateEquipmentRequest struct {
	Name                 string        `json:"name" binding:"required,min=1,max=100"`
	Description          string        `json:"description" binding:"max=500"`
	ImageURL             string        `json:"image_url" binding:"omitempty,url"`
	Type                 EquipmentType `json:"type" binding:"required,oneof=RACKET BALL APPAREL ACCESSORY FOOD DRINK OTHER"`
	PurchasePrice        float64       `json:"purchase_price" binding:"required,gt=0"`
	RentalPrice          *float64      `json:"rental_price" binding:"omitempty,gt=0"`
	AvailableForPurchase bool          `json:"available_for_purchase"`
	AvailableForRental   bool          `json:"available_for_rental"`
}
