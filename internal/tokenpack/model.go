package tokenpack

type TokenPack struct {
	ID          int64    `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
	TokenCount  int      `db:"token_count" json:"token_count"`
	Price       float64  `db:"price" json:"price"`
	Discount    *float64 `db:"discount" json:"discount,omitempty"`
	Active      bool     `db:"active" json:"active"`
}

type CreateTokenPackRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=500"`
	TokenCount  int      `json:"token_count" binding:"required,min=1"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Discount    *float64 `json:"discount" binding:"omitempty,gte=0"`
	Active      bool     `json:"active"`
}

type UpdateTokenPackRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=500"`
	TokenCount  int      `json:"token_count" binding:"required,min=1"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Discount    *float64 `json:"discount" binding:"omitempty,gte=0"`
	Active      bool     `json:"active"`
}
