package terrain

import "time"

type TerrainType string

const (
	TypeSingle    TerrainType = "SINGLE"
	TypeDouble    TerrainType = "DOUBLE"
	TypePanoramic TerrainType = "PANORAMIC"
)

// Terrain is a bookable court within a facility.
type Terrain struct {
	ID           int64       `db:"id" json:"id"`
	Name         string      `db:"name" json:"name"`
	Description  string      `db:"description" json:"description"`
	ImageURL     string      `db:"image_url" json:"image_url"`
	PricePerHour float64     `db:"price_per_hour" json:"price_per_hour"`
	Indoor       bool        `db:"indoor" json:"indoor"`
	Type         TerrainType `db:"type" json:"type"`
	Active       bool        `db:"active" json:"active"`
	FacilityID   int64       `db:"facility_id" json:"facility_id"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

type CreateTerrainRequest struct {
	Name         string      `json:"name" binding:"required,max=50"`
	Description  string      `json:"description" binding:"max=500"`
	ImageURL     string      `json:"image_url"`
	PricePerHour float64     `json:"price_per_hour" binding:"required,gt=0"`
	Indoor       bool        `json:"indoor"`
	Type         TerrainType `json:"type" binding:"required,oneof=SINGLE DOUBLE PANORAMIC"`
}

// UpdateTerrainRequest leaves the active flag and the owning facility alone;
// activation goes through the dedicated status endpoint.
type UpdateTerrainRequest struct {
	Name         string      `json:"name" binding:"required,max=50"`
	Description  string      `json:"description" binding:"max=500"`
	ImageURL     string      `json:"image_url"`
	PricePerHour float64     `json:"price_per_hour" binding:"required,gt=0"`
	Indoor       bool        `json:"indoor"`
	Type         TerrainType `json:"type" binding:"required,oneof=SINGLE DOUBLE PANORAMIC"`
}
