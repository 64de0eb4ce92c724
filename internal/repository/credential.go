package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/passmint/passmint-go/internal/model"
)

var ErrEntryNotFound = errors.New("credential entry not found")

// CredentialRepository handles credential entry persistence operations.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// upsertQuery is the shared SQL for insert-or-update with LWW conflict resolution.
const upsertQuery = `
	INSERT INTO credential_entries (user_id, entry_id, name, secret_data, strength_score, version, deleted)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		name           = IF(VALUES(version) > version, VALUES(name), name),
		secret_data    = IF(VALUES(version) > version, VALUES(secret_data), secret_data),
		strength_score = IF(VALUES(version) > version, VALUES(strength_score), strength_score),
		deleted        = IF(VALUES(version) > version, VALUES(deleted), deleted),
		version        = IF(VALUES(version) > version, VALUES(version), version),
		updated_at     = IF(VALUES(version) > version, CURRENT_TIMESTAMP, updated_at)`

const selectColumns = `id, user_id, entry_id, name, secret_data, strength_score, version, created_at, updated_at, deleted`

// BeginTx starts a new database transaction.
func (r *CredentialRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// Upsert inserts or updates a credential entry using last-write-wins conflict resolution.
// The entry is only updated if the incoming version is greater than the existing version.
func (r *CredentialRepository) Upsert(ctx context.Context, entry *model.CredentialEntry) error {
	_, err := r.db.ExecContext(ctx, upsertQuery,
		entry.UserID,
		entry.EntryID,
		entry.Name,
		entry.Secret,
		entry.StrengthScore,
		entry.Version,
		entry.Deleted,
	)
	return err
}

// UpsertTx inserts or updates a credential entry within the provided transaction.
func (r *CredentialRepository) UpsertTx(ctx context.Context, tx *sql.Tx, entry *model.CredentialEntry) error {
	_, err := tx.ExecContext(ctx, upsertQuery,
		entry.UserID,
		entry.EntryID,
		entry.Name,
		entry.Secret,
		entry.StrengthScore,
		entry.Version,
		entry.Deleted,
	)
	return err
}

// GetByEntryID retrieves a credential entry by user ID and client-generated entry ID.
func (r *CredentialRepository) GetByEntryID(ctx context.Context, userID int64, entryID string) (*model.CredentialEntry, error) {
	query := `SELECT ` + selectColumns + `
		FROM credential_entries WHERE user_id = ? AND entry_id = ?`

	entry := &model.CredentialEntry{}
	err := r.db.QueryRowContext(ctx, query, userID, entryID).Scan(
		&entry.ID, &entry.UserID, &entry.EntryID, &entry.Name, &entry.Secret,
		&entry.StrengthScore, &entry.Version, &entry.CreatedAt, &entry.UpdatedAt, &entry.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// ListByUser retrieves all non-deleted credential entries for a user, ordered by most recently updated.
func (r *CredentialRepository) ListByUser(ctx context.Context, userID int64) ([]model.CredentialEntry, error) {
	query := `SELECT ` + selectColumns + `
		FROM credential_entries WHERE user_id = ? AND deleted = FALSE ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetChangedSince retrieves all credential entries (including deleted) modified after the given timestamp.
// This is used during sync to send changed entries back to the client.
func (r *CredentialRepository) GetChangedSince(ctx context.Context, userID int64, since time.Time) ([]model.CredentialEntry, error) {
	query := `SELECT ` + selectColumns + `
		FROM credential_entries WHERE user_id = ? AND updated_at > ? ORDER BY updated_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// SoftDelete marks a credential entry as deleted and increments its version for sync propagation.
func (r *CredentialRepository) SoftDelete(ctx context.Context, userID int64, entryID string) error {
	query := `UPDATE credential_entries SET deleted = TRUE, version = version + 1
		WHERE user_id = ? AND entry_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, entryID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func scanEntries(rows *sql.Rows) ([]model.CredentialEntry, error) {
	var entries []model.CredentialEntry
	for rows.Next() {
		var e model.CredentialEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.EntryID, &e.Name, &e.Secret,
			&e.StrengthScore, &e.Version, &e.CreatedAt, &e.UpdatedAt, &e.Deleted,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
