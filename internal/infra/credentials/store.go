package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/infra"
	"storefront/internal/sqlinline"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ErrUnknownProvider is returned for providers without a stored key slot.
var ErrUnknownProvider = errors.New("unknown advisor provider")

// Store keeps advisor API keys in the integration_tokens table so they can be
// rotated without redeploying.
type Store struct {
	sql infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql}
}

// Token returns the stored key for provider, or "" when none is stored.
func (s *Store) Token(ctx context.Context, provider string) (string, error) {
	if err := checkProvider(provider); err != nil {
		return "", err
	}
	row := s.sql.QueryRow(ctx, sqlinline.QSelectIntegrationToken, provider)
	var token string
	if err := row.Scan(&token); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("select %s token: %w", provider, err)
	}
	return strings.TrimSpace(token), nil
}

// SetToken stores key for provider with optional metadata such as the model.
func (s *Store) SetToken(ctx context.Context, provider, key string, props map[string]any) error {
	if err := checkProvider(provider); err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%s api key is required", provider)
	}
	return s.upsert(ctx, provider, key, props)
}

// DeleteToken removes the stored key for provider.
func (s *Store) DeleteToken(ctx context.Context, provider string) error {
	if err := checkProvider(provider); err != nil {
		return err
	}
	_, err := s.sql.Exec(ctx, sqlinline.QDeleteIntegrationToken, provider)
	return err
}

func (s *Store) upsert(ctx context.Context, provider, token string, props map[string]any) error {
	payload := props
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = s.sql.Exec(ctx, sqlinline.QUpsertIntegrationToken, provider, token, raw)
	return err
}

func checkProvider(provider string) error {
	switch provider {
	case ProviderOpenAI, ProviderGemini:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
