package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/models"
)

// DisplayReadRepository handles display read operations. Every method
// takes the owner id: ownership is part of the query predicate, never
// an optional filter, so other users' rows are invisible by construction.
// Reads join the per-request transaction when one is in the context, so
// a row written earlier in the same request is visible before commit.
type DisplayReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDisplayReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DisplayReadRepository {
	return &DisplayReadRepository{db: db, txGetter: txGetter}
}

func (r *DisplayReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	return displayExecutor(ctx, r.db, r.txGetter)
}

const displayColumns = `
	d.id, d.name, d.description, d.price_per_day,
	d.resolution_width, d.resolution_height, d.type, d.user_id,
	d.photo_path, d.photo_thumb_path, d.created_at, d.updated_at,
	u.name AS owner_name, u.email AS owner_email
`

// GetByIDAndOwner returns the display only when it belongs to ownerID,
// with the owner's public fields resolved. A row owned by someone else
// and a truly absent row are both reported as nil.
func (r *DisplayReadRepository) GetByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID) (*models.DisplayWithUserDB, error) {
	query := `
		SELECT ` + displayColumns + `
		FROM displays d
		JOIN users u ON u.id = d.user_id
		WHERE d.id = $1 AND d.user_id = $2
		LIMIT 1
	`

	var display models.DisplayWithUserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &display, query, displayID, ownerID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{displayID, ownerID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &display, nil
}

// ListByOwner returns one page of the owner's displays in creation order,
// plus the total count under the same predicate so pagination metadata
// reflects only the caller's own data.
func (r *DisplayReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter models.DisplayFilter, page, perPage int) ([]models.DisplayWithUserDB, int64, error) {
	if page < 1 {
		page = 1
	}

	countQuery := `
		SELECT COUNT(*)
		FROM displays d
		WHERE d.user_id = $1
		  AND ($2::VARCHAR IS NULL OR d.type = $2)
	`

	var total int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &total, countQuery, ownerID, filter.Type)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(countQuery), " "),
		"args", []any{ownerID, filter.Type},
		"result", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	listQuery := `
		SELECT ` + displayColumns + `
		FROM displays d
		JOIN users u ON u.id = d.user_id
		WHERE d.user_id = $1
		  AND ($2::VARCHAR IS NULL OR d.type = $2)
		ORDER BY d.created_at ASC, d.id ASC
		LIMIT $3 OFFSET $4
	`

	displays := []models.DisplayWithUserDB{}
	offset := (page - 1) * perPage
	err = sqlx.SelectContext(ctx, r.executor(ctx), &displays, listQuery, ownerID, filter.Type, perPage, offset)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", []any{ownerID, filter.Type, perPage, offset},
		"result", len(displays),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return displays, total, nil
}

// DisplayWriteRepository handles display write operations
type DisplayWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDisplayWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DisplayWriteRepository {
	return &DisplayWriteRepository{db: db, txGetter: txGetter}
}

func (r *DisplayWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	return displayExecutor(ctx, r.db, r.txGetter)
}

// displayExecutor picks the per-request transaction from the context
// when present, falling back to the plain connection pool. Reads and
// writes of one request must share it or a write is invisible to the
// read-back that builds the response.
func displayExecutor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// Save inserts a new display row. The owner id has been forced to the
// authenticated caller by the service layer before this point.
func (r *DisplayWriteRepository) Save(ctx context.Context, d *models.DisplayDB) error {
	query := `
		INSERT INTO displays (
			id, name, description, price_per_day,
			resolution_width, resolution_height, type, user_id,
			photo_path, photo_thumb_path, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	args := []any{
		d.DisplayID, d.Name, d.Description, d.PricePerDay,
		d.ResolutionWidth, d.ResolutionHeight, d.Type, d.UserID,
		d.PhotoPath, d.PhotoThumbPath,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateByIDAndOwner applies the supplied fields of upd to the display,
// refreshing updated_at, only when the row belongs to ownerID. Returns
// false when no such row exists for this owner. COALESCE keeps the
// stored value for every nil field, which also means a nullable column
// like description can only be overwritten here, never nulled out.
func (r *DisplayWriteRepository) UpdateByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID, upd models.DisplayUpdate) (bool, error) {
	query := `
		UPDATE displays
		SET name              = COALESCE($3, name),
		    description       = COALESCE($4, description),
		    price_per_day     = COALESCE($5, price_per_day),
		    resolution_width  = COALESCE($6, resolution_width),
		    resolution_height = COALESCE($7, resolution_height),
		    type              = COALESCE($8, type),
		    photo_path        = COALESCE($9, photo_path),
		    photo_thumb_path  = COALESCE($10, photo_thumb_path),
		    updated_at        = NOW()
		WHERE id = $1 AND user_id = $2
	`
	args := []any{
		displayID, ownerID,
		upd.Name, upd.Description, upd.PricePerDay,
		upd.ResolutionWidth, upd.ResolutionHeight, upd.Type,
		upd.PhotoPath, upd.PhotoThumbPath,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteByIDAndOwner removes the display row when it belongs to ownerID.
// Returns false when no such row exists for this owner.
func (r *DisplayWriteRepository) DeleteByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM displays
		WHERE id = $1 AND user_id = $2
	`
	args := []any{displayID, ownerID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
