package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"storefront/internal/infra"
	"storefront/internal/providers/advisor"
)

// tokenSource looks up stored advisor keys.
type tokenSource interface {
	Token(ctx context.Context, provider string) (string, error)
}

// selectAdvisor picks the advisor for cfg.AdvisorProvider. The API key comes
// from the environment, then from the token store; without a key the static
// advisor is used.
func selectAdvisor(ctx context.Context, cfg *infra.Config, tokens tokenSource, client *http.Client, logger zerolog.Logger) advisor.Advisor {
	provider := cfg.AdvisorProvider
	if provider == advisor.StaticProviderName {
		return advisor.NewStatic()
	}

	key := cfg.OpenAIAPIKey
	if provider == advisor.GeminiProviderName {
		key = cfg.GeminiAPIKey
	}
	key = strings.TrimSpace(key)
	if key == "" && tokens != nil {
		stored, err := tokens.Token(ctx, provider)
		if err != nil {
			logger.Warn().Err(err).Str("provider", provider).Msg("advisor key lookup failed")
		}
		key = stored
	}
	if key == "" {
		logger.Warn().Str("provider", provider).Msg("no advisor api key configured; using static advice")
		return advisor.NewStatic()
	}

	var (
		adv advisor.Advisor
		err error
	)
	switch provider {
	case advisor.GeminiProviderName:
		adv, err = advisor.NewGemini(advisor.GeminiOptions{
			APIKey:     key,
			Model:      cfg.GeminiModel,
			BaseURL:    cfg.GeminiBaseURL,
			HTTPClient: client,
		})
	default:
		adv, err = advisor.NewOpenAI(advisor.OpenAIOptions{
			APIKey:       key,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			HTTPClient:   client,
			OnWarning: func(reason, detail string) {
				logger.Warn().Str("provider", provider).Str("reason", reason).Msg(detail)
			},
		})
	}
	if err != nil {
		logger.Error().Err(err).Str("provider", provider).Msg("advisor init failed; using static advice")
		return advisor.NewStatic()
	}
	return adv
}
