package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shipguard/internal/common"
	"github.com/dmitrijs2005/shipguard/internal/cryptox"
	"github.com/dmitrijs2005/shipguard/internal/logging"
	"github.com/dmitrijs2005/shipguard/internal/storage"
)

// Persister mirrors the record into storage under common.SessionStorageKey.
type Persister struct {
	repo   storage.Repository
	key    []byte
	logger logging.Logger
	leeway time.Duration
	now    func() time.Time
}

func NewPersister(repo storage.Repository, key []byte, logger logging.Logger, leeway time.Duration) *Persister {
	return &Persister{repo: repo, key: key, logger: logger, leeway: leeway, now: time.Now}
}

// Persist is a Hook: it stores the encrypted record, or removes the stored
// entry when rec is nil.
func (p *Persister) Persist(ctx context.Context, rec *Record) error {
	if rec == nil {
		if err := p.repo.Delete(ctx, common.SessionStorageKey); err != nil {
			return fmt.Errorf("remove session: %w", err)
		}
		p.logger.Debug(ctx, "session removed")
		return nil
	}

	text, err := cryptox.SealString(rec, p.key)
	if err != nil {
		return fmt.Errorf("encrypt session: %w", err)
	}
	if err := p.repo.Set(ctx, common.SessionStorageKey, text); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	p.logger.Debug(ctx, "session stored", "id", rec.ID)
	return nil
}

// Restore returns the stored record, or nil when there is none. It never
// fails: an unreadable entry is logged and reported as no session, and an
// expired JWT token is removed from storage.
func (p *Persister) Restore(ctx context.Context) *Record {
	rec, err := p.load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrNoSession):
		return nil
	case errors.Is(err, common.ErrCorruptedRecord):
		p.logger.Warn(ctx, "stored session is unreadable, starting logged out", "error", err)
		return nil
	default:
		p.logger.Warn(ctx, "session storage unavailable, starting logged out", "error", err)
		return nil
	}

	if tokenExpired(rec.Token, p.now(), p.leeway) {
		p.logger.Info(ctx, "stored session token expired", "id", rec.ID)
		if err := p.repo.Delete(ctx, common.SessionStorageKey); err != nil {
			p.logger.Warn(ctx, "failed to remove expired session", "error", err)
		}
		return nil
	}
	return rec
}

func (p *Persister) load(ctx context.Context) (*Record, error) {
	text, err := p.repo.Get(ctx, common.SessionStorageKey)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := cryptox.OpenString(text, p.key, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptedRecord, err)
	}
	return &rec, nil
}

// Rekey re-encrypts the stored record under newKey in one storage update.
// After success the Persister uses newKey.
func (p *Persister) Rekey(ctx context.Context, newKey []byte) error {
	err := p.repo.Update(ctx, common.SessionStorageKey, func(current string) (string, error) {
		var rec Record
		if err := cryptox.OpenString(current, p.key, &rec); err != nil {
			return "", fmt.Errorf("%w: %v", common.ErrCorruptedRecord, err)
		}
		return cryptox.SealString(&rec, newKey)
	})
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrNoSession
	}
	if err != nil {
		return err
	}
	p.key = newKey
	return nil
}

// Bind restores the stored record into a new Store and subscribes p to it.
func (p *Persister) Bind(ctx context.Context) *Store {
	s := NewStore(p.Restore(ctx))
	s.Subscribe(p.Persist)
	return s
}
