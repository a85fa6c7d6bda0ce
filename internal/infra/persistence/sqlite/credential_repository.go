// Package sqlite persists the credential in a local SQLite key/value table.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS local_storage (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

type credentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository opens (and creates if needed) the database at path.
func NewCredentialRepository(ctx context.Context, path string) (repository.CredentialRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "failed to create credential directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open credential database")
	}
	// A single connection serialises writers; the table is two rows.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to create local_storage table")
	}

	return &credentialRepository{db: db}, nil
}

func (r *credentialRepository) Load(ctx context.Context) (*entity.Credential, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM local_storage WHERE key IN (?, ?)`,
		repository.AccessTokenKey, repository.RefreshTokenKey,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query credential")
	}
	defer rows.Close()

	var cred entity.Credential
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "failed to scan credential entry")
		}
		switch key {
		case repository.AccessTokenKey:
			cred.AccessToken = value
		case repository.RefreshTokenKey:
			cred.RefreshToken = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if cred.IsZero() {
		return nil, nil
	}

	return &cred, nil
}

func (r *credentialRepository) Save(ctx context.Context, credential entity.Credential) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		const upsert = `INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

		if _, err := tx.ExecContext(ctx, upsert, repository.AccessTokenKey, credential.AccessToken); err != nil {
			return errors.Wrap(err, "failed to write access token")
		}
		if _, err := tx.ExecContext(ctx, upsert, repository.RefreshTokenKey, credential.RefreshToken); err != nil {
			return errors.Wrap(err, "failed to write refresh token")
		}

		return nil
	})
}

func (r *credentialRepository) Clear(ctx context.Context) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM local_storage WHERE key IN (?, ?)`,
			repository.AccessTokenKey, repository.RefreshTokenKey,
		)

		return errors.Wrap(err, "failed to delete credential")
	})
}

func (r *credentialRepository) Close() error {
	return errors.WithStack(r.db.Close())
}

func (r *credentialRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit transaction")
}
