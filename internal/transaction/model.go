package transaction

import "time"

type Type string

const (
	TypePurchase Type = "PURCHASE"
	TypeRental   Type = "RENTAL"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusReturned  Status = "RETURNED"
	StatusCancelled Status = "CANCELLED"
)

type Transaction struct {
	ID              int64      `db:"id" json:"id"`
	EquipmentID     int64      `db:"equipment_id" json:"equipment_id"`
	UserID          int64      `db:"user_id" json:"user_id"`
	Type            Type       `db:"type" json:"type"`
	Quantity        int        `db:"quantity" json:"quantity"`
	UnitPrice       float64    `db:"unit_price" json:"unit_price"`
	TotalAmount     float64    `db:"total_amount" json:"total_amount"`
	TransactionDate time.Time  `db:"transaction_date" json:"transaction_date"`
	ReturnDate      *time.Time `db:"return_date" json:"return_date,omitempty"`
	Status          Status     `db:"status" json:"status"`
	Notes           string     `db:"notes" json:"notes"`
}
