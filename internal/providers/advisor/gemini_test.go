package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestGeminiAdviseParsesResponse(t *testing.T) {
	var captured geminiRequest
	advisor, err := NewGemini(GeminiOptions{
		APIKey:  "dummy",
		BaseURL: "https://gl.example.com/v1beta",
		Model:   "gemini-1.5-pro",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if r.URL.String() != "https://gl.example.com/v1beta/models/gemini-1.5-pro:generateContent" {
				t.Fatalf("unexpected url %s", r.URL)
			}
			if got := r.Header.Get("x-goog-api-key"); got != "dummy" {
				t.Fatalf("x-goog-api-key = %q", got)
			}
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			body := `{"candidates":[{"content":{"parts":[{"text":"` +
				"```json\\n{\\\"recommendations\\\":[\\\"eat well\\\"]}\\n```" +
				`"}]}}]}`
			return jsonResponse(http.StatusOK, body), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	advice, err := advisor.Advise(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if captured.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("ResponseMimeType = %q", captured.GenerationConfig.ResponseMimeType)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != systemPrompt {
		t.Fatalf("system instruction not set: %+v", captured.SystemInstruction)
	}
	if len(advice.Recommendations) != 1 || advice.Recommendations[0] != "eat well" {
		t.Fatalf("Recommendations = %#v", advice.Recommendations)
	}
	if advice.MealPlan != nil {
		t.Fatalf("MealPlan = %#v, want nil", advice.MealPlan)
	}
}

func TestGeminiAdviseEmptyCandidates(t *testing.T) {
	advisor, err := NewGemini(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"candidates":[]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	if advisor.Model() != "gemini-1.5-flash" {
		t.Fatalf("Model() = %q", advisor.Model())
	}
	_, err = advisor.Advise(context.Background(), sampleRequest())
	var advErr *Error
	if !errors.As(err, &advErr) || advErr.Reason != "empty_response" {
		t.Fatalf("err = %v, want empty_response", err)
	}
}

func TestGeminiAdviseUpstreamStatus(t *testing.T) {
	advisor, _ := NewGemini(GeminiOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusTooManyRequests, `{"error":{}}`), nil
		})},
	})
	_, err := advisor.Advise(context.Background(), sampleRequest())
	var advErr *Error
	if !errors.As(err, &advErr) || advErr.Reason != "http_429" || advErr.Provider != GeminiProviderName {
		t.Fatalf("err = %v, want gemini http_429", err)
	}
}
