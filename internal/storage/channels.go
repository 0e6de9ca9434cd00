package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"opsboard/internal/repository"
)

// ErrSyncDisabled reports a sync attempt on a channel whose sync toggle is
// off (or was turned off concurrently).
var ErrSyncDisabled = errors.New("channel sync is disabled")

func (s *PostgresStorage) CreateChannel(ctx context.Context, ch *repository.Channel) error {
	if ch.Name == "" {
		return fmt.Errorf("channel name is required: %w", ErrInvalidInput)
	}
	if !repository.ValidChannelType(ch.Type) {
		return fmt.Errorf("unknown channel type %q: %w", ch.Type, ErrInvalidInput)
	}
	if ch.Status == "" {
		ch.Status = "active"
	}
	if ch.SyncFrequency <= 0 {
		ch.SyncFrequency = 60
	}
	ch.CreatedAt = time.Now().UTC()
	return s.channels.Create(ctx, ch)
}

func (s *PostgresStorage) GetChannel(ctx context.Context, id int64) (*repository.Channel, error) {
	return s.channels.GetByID(ctx, id)
}

func (s *PostgresStorage) UpdateChannel(ctx context.Context, ch *repository.Channel) error {
	if !repository.ValidChannelType(ch.Type) {
		return fmt.Errorf("unknown channel type %q: %w", ch.Type, ErrInvalidInput)
	}
	return s.channels.Update(ctx, ch)
}

func (s *PostgresStorage) DeleteChannel(ctx context.Context, id int64) error {
	return s.channels.Delete(ctx, id)
}

func (s *PostgresStorage) ListChannels(ctx context.Context) ([]repository.Channel, error) {
	return s.channels.List(ctx)
}

func (s *PostgresStorage) SetChannelSync(ctx context.Context, id int64, enabled bool) error {
	if err := s.channels.SetSyncEnabled(ctx, id, enabled); err != nil {
		return err
	}
	zap.S().Infow("channel sync toggled", "channel_id", id, "enabled", enabled)
	return nil
}

// SyncChannelNow stamps last_sync_at for a sync-enabled channel. The actual
// marketplace pull happens out of band; the stamp is what the dashboard and
// the due-list below key off.
func (s *PostgresStorage) SyncChannelNow(ctx context.Context, id int64) (*repository.Channel, error) {
	now := time.Now().UTC()
	err := s.channels.MarkSynced(ctx, id, now)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			// The row exists but the guard did not match, or the id is gone.
			if _, getErr := s.channels.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, ErrSyncDisabled
		}
		return nil, err
	}
	zap.S().Infow("channel synced", "channel_id", id)
	return s.channels.GetByID(ctx, id)
}

// ChannelsDueForSync lists sync-enabled channels whose last sync is older
// than their own sync_frequency allows, assuming minutes.
func (s *PostgresStorage) ChannelsDueForSync(ctx context.Context) ([]repository.Channel, error) {
	channels, err := s.channels.ListSyncDue(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	due := channels[:0]
	now := time.Now().UTC()
	for _, ch := range channels {
		if ch.LastSyncAt == nil {
			due = append(due, ch)
			continue
		}
		if now.Sub(*ch.LastSyncAt) >= time.Duration(ch.SyncFrequency)*time.Minute {
			due = append(due, ch)
		}
	}
	return due, nil
}
