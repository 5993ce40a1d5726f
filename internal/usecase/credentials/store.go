package credentials

import (
	"context"
	"encoding/json"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/keyvalue"
)

// Fixed storage keys, one record per credential bundle
const (
	keyWordPress = "wp_credentials"
	keySocial    = "social_credentials"
)

// Store persists the two credential bundles in an injected key-value
// backend. Records are overwritten wholesale; beyond presence checks at
// publish time, no validation is applied.
type Store struct {
	kv keyvalue.Store
}

// NewStore creates a credential store over the given backend
func NewStore(kv keyvalue.Store) *Store {
	return &Store{kv: kv}
}

// SaveWordPress overwrites the stored CMS bundle
func (s *Store) SaveWordPress(ctx context.Context, creds entities.WordPressCredentials) error {
	return s.save(ctx, keyWordPress, creds)
}

// SaveSocial overwrites the stored social bundle
func (s *Store) SaveSocial(ctx context.Context, creds entities.SocialCredentials) error {
	return s.save(ctx, keySocial, creds)
}

// LoadWordPress returns the stored CMS bundle, zero-valued when absent
func (s *Store) LoadWordPress(ctx context.Context) (entities.WordPressCredentials, error) {
	var creds entities.WordPressCredentials
	err := s.load(ctx, keyWordPress, &creds)
	return creds, err
}

// LoadSocial returns the stored social bundle, zero-valued when absent
func (s *Store) LoadSocial(ctx context.Context) (entities.SocialCredentials, error) {
	var creds entities.SocialCredentials
	err := s.load(ctx, keySocial, &creds)
	return creds, err
}

// Clear removes both bundles (logout path)
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, keyWordPress); err != nil {
		return apperrors.ErrStoreFailed("delete", err)
	}
	if err := s.kv.Delete(ctx, keySocial); err != nil {
		return apperrors.ErrStoreFailed("delete", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.ErrInternal(err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return apperrors.ErrStoreFailed("set", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, key string, v interface{}) error {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return apperrors.ErrStoreFailed("get", err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return apperrors.ErrStoreFailed("decode", err)
	}
	return nil
}
