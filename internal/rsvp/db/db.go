package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"ms-rsvp/internal/models"
)

var ErrNotFound = errors.New("rsvp response not found")

type DB struct {
	Bun *bun.DB
}

// CreateResponse inserts r and fills in its ID. with_partner is always stored as false.
func (d *DB) CreateResponse(ctx context.Context, r *models.RsvpResponse) error {
	r.WithPartner = false
	_, err := d.Bun.NewInsert().
		Model(r).
		ExcludeColumn("id").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}
	return nil
}

// ListResponses returns every response, newest first.
func (d *DB) ListResponses(ctx context.Context) ([]models.RsvpResponse, error) {
	responses := make([]models.RsvpResponse, 0)
	err := d.Bun.NewSelect().
		Model(&responses).
		Column("id", "created_at", "full_name", "attending").
		OrderExpr("id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, nil
}

func (d *DB) GetResponseByID(ctx context.Context, id int64) (*models.RsvpResponse, error) {
	var response models.RsvpResponse
	err := d.Bun.NewSelect().
		Model(&response).
		Column("id", "created_at", "full_name", "attending").
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get response %d: %w", id, err)
	}
	return &response, nil
}

// UpdateResponse overwrites full_name and attending. id and created_at are never written.
func (d *DB) UpdateResponse(ctx context.Context, id int64, fullName string, attending bool) error {
	res, err := d.Bun.NewUpdate().
		Model((*models.RsvpResponse)(nil)).
		Set("full_name = ?", fullName).
		Set("attending = ?", attending).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update response %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update response %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteResponse removes the response and reports whether a row was deleted.
// A missing id is not an error.
func (d *DB) DeleteResponse(ctx context.Context, id int64) (bool, error) {
	res, err := d.Bun.NewDelete().
		Model((*models.RsvpResponse)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete response %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete response %d: %w", id, err)
	}
	return n > 0, nil
}
