package main

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"storefront/internal/infra"
)

type stubTokens struct {
	tokens map[string]string
	err    error
	asked  []string
}

func (s *stubTokens) Token(_ context.Context, provider string) (string, error) {
	s.asked = append(s.asked, provider)
	return s.tokens[provider], s.err
}

func TestSelectAdvisor(t *testing.T) {
	tests := []struct {
		name   string
		cfg    infra.Config
		tokens *stubTokens
		want   string
		asked  bool
	}{
		{
			name: "static configured",
			cfg:  infra.Config{AdvisorProvider: "static", OpenAIAPIKey: "sk-env"},
			want: "static",
		},
		{
			name: "openai key from env",
			cfg:  infra.Config{AdvisorProvider: "openai", OpenAIAPIKey: "sk-env"},
			want: "openai",
		},
		{
			name:   "gemini key from store",
			cfg:    infra.Config{AdvisorProvider: "gemini"},
			tokens: &stubTokens{tokens: map[string]string{"gemini": "g-stored"}},
			want:   "gemini",
			asked:  true,
		},
		{
			name:   "no key anywhere",
			cfg:    infra.Config{AdvisorProvider: "openai"},
			tokens: &stubTokens{},
			want:   "static",
			asked:  true,
		},
		{
			name:   "store failure",
			cfg:    infra.Config{AdvisorProvider: "openai"},
			tokens: &stubTokens{err: errors.New("db down")},
			want:   "static",
			asked:  true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tokens tokenSource
			if tc.tokens != nil {
				tokens = tc.tokens
			}
			adv := selectAdvisor(context.Background(), &tc.cfg, tokens, nil, zerolog.Nop())
			if adv.Name() != tc.want {
				t.Fatalf("advisor = %q, want %q", adv.Name(), tc.want)
			}
			if tc.tokens != nil && (len(tc.tokens.asked) > 0) != tc.asked {
				t.Fatalf("token store asked = %v, want %v", tc.tokens.asked, tc.asked)
			}
		})
	}
}
