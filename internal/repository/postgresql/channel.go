package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type ChannelRepo struct {
	db db.DB
}

func NewChannelRepo(db db.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

func (r *ChannelRepo) Create(ctx context.Context, ch *repository.Channel) error {
	err := r.db.Get(ctx, &ch.ID, `
        INSERT INTO channels (name, type, status, sync_enabled, sync_frequency, credentials, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, ch.Name, ch.Type, ch.Status, ch.SyncEnabled, ch.SyncFrequency, ch.Credentials, ch.CreatedAt)
	return repository.TranslateError(err)
}

func (r *ChannelRepo) GetByID(ctx context.Context, id int64) (*repository.Channel, error) {
	var ch repository.Channel
	err := r.db.Get(ctx, &ch, "SELECT * FROM channels WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &ch, nil
}

func (r *ChannelRepo) Update(ctx context.Context, ch *repository.Channel) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE channels
        SET name = $1, type = $2, status = $3, sync_enabled = $4, sync_frequency = $5, credentials = $6
        WHERE id = $7
    `, ch.Name, ch.Type, ch.Status, ch.SyncEnabled, ch.SyncFrequency, ch.Credentials, ch.ID)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ChannelRepo) SetSyncEnabled(ctx context.Context, id int64, enabled bool) error {
	tag, err := r.db.Exec(ctx, "UPDATE channels SET sync_enabled = $1 WHERE id = $2", enabled, id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// MarkSynced stamps last_sync_at only for channels that still have sync turned on.
func (r *ChannelRepo) MarkSynced(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE channels SET last_sync_at = $1
        WHERE id = $2 AND sync_enabled = true
    `, at, id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrStatusConflict
	}
	return nil
}

func (r *ChannelRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM channels WHERE id = $1", id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ChannelRepo) List(ctx context.Context) ([]repository.Channel, error) {
	var channels []repository.Channel
	err := r.db.Select(ctx, &channels, "SELECT * FROM channels ORDER BY name ASC")
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return channels, nil
}

func (r *ChannelRepo) ListSyncDue(ctx context.Context, olderThan time.Time) ([]repository.Channel, error) {
	var channels []repository.Channel
	err := r.db.Select(ctx, &channels, `
        SELECT * FROM channels
        WHERE sync_enabled = true AND (last_sync_at IS NULL OR last_sync_at < $1)
        ORDER BY last_sync_at ASC NULLS FIRST
    `, olderThan)
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return channels, nil
}
