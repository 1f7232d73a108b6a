package session

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shipguard/internal/common"
	"github.com/dmitrijs2005/shipguard/internal/cryptox"
	"github.com/dmitrijs2005/shipguard/internal/storage"
)

// KeyFromSecret derives the record key from secret and the salt kept in
// storage. The salt is generated and stored on first use.
func KeyFromSecret(ctx context.Context, repo storage.Repository, secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", common.ErrInvalidKey)
	}

	salt, err := loadSalt(ctx, repo)
	if err != nil {
		return nil, err
	}
	return cryptox.DeriveKey(secret, salt), nil
}

func loadSalt(ctx context.Context, repo storage.Repository) ([]byte, error) {
	stored, err := repo.Get(ctx, common.SaltStorageKey)
	switch {
	case err == nil:
		salt, err := hex.DecodeString(stored)
		if err != nil {
			return nil, fmt.Errorf("decode salt: %w", err)
		}
		return salt, nil
	case errors.Is(err, common.ErrorNotFound):
		salt := common.GenerateRandByteArray(cryptox.SaltSize)
		if err := repo.Set(ctx, common.SaltStorageKey, hex.EncodeToString(salt)); err != nil {
			return nil, fmt.Errorf("store salt: %w", err)
		}
		return salt, nil
	default:
		return nil, fmt.Errorf("load salt: %w", err)
	}
}
