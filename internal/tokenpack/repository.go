package tokenpack

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTokenPackNotFound = errors.New("token pack not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const tokenPackColumns = `id, name, description, token_count, price, discount, active`

func (r *repository) Create(ctx context.Context, p *TokenPack) (*TokenPack, error) {
	query := `
		INSERT INTO token_packs (name, description, token_count, price, discount, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + tokenPackColumns

	var created TokenPack
	err := r.db.GetContext(ctx, &created, query,
		p.Name, p.Description, p.TokenCount, p.Price, p.Discount, p.Active,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*TokenPack, error) {
	query := `SELECT ` + tokenPackColumns + ` FROM token_packs WHERE id = $1`

	var p TokenPack
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) FindAll(ctx context.Context) ([]TokenPack, error) {
	query := `SELECT ` + tokenPackColumns + ` FROM token_packs ORDER BY token_count`

	var packs []TokenPack
	err := r.db.SelectContext(ctx, &packs, query)
	if err != nil {
		return nil, err
	}

	return packs, nil
}

func (r *repository) FindActive(ctx context.Context) ([]TokenPack, error) {
	query := `SELECT ` + tokenPackColumns + ` FROM token_packs WHERE active = TRUE ORDER BY token_count`

	var packs []TokenPack
	err := r.db.SelectContext(ctx, &packs, query)
	if err != nil {
		return nil, err
	}

	return packs, nil
}

func (r *repository) Update(ctx context.Context, p *TokenPack) (*TokenPack, error) {
	query := `
		UPDATE token_packs
		SET name = $1, description = $2, token_count = $3, price = $4, discount = $5, active = $6
		WHERE id = $7
		RETURNING ` + tokenPackColumns

	var updated TokenPack
	err := r.db.GetContext(ctx, &updated, query,
		p.Name, p.Description, p.TokenCount, p.Price, p.Discount, p.Active, p.ID,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) (*TokenPack, error) {
	query := `UPDATE token_packs SET active = $1 WHERE id = $2 RETURNING ` + tokenPackColumns

	var updated TokenPack
	err := r.db.GetContext(ctx, &updated, query, active, id)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM token_packs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTokenPackNotFound
	}

	return nil
}
