package token

import "time"

// UserToken is one purchased batch of prepaid tokens. Consumption draws
// batches down in purchase order; a batch with tokens_remaining zero or a
// past expiry date no longer counts toward the user's balance.
type UserToken struct {
	ID              int64      `db:"id" json:"id"`
	UserID          int64      `db:"user_id" json:"user_id"`
	TokenPackID     int64      `db:"token_pack_id" json:"token_pack_id"`
	TokensRemaining int        `db:"tokens_remaining" json:"tokens_remaining"`
	PurchaseAmount  float64    `db:"purchase_amount" json:"purchase_amount"`
	PurchaseDate    time.Time  `db:"purchase_date" json:"purchase_date"`
	ExpiryDate      *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
}

type TokenBalanceResponse struct {
	Tokens int `json:"tokens"`
}
