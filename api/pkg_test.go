package api_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"koreatrip/api"
	"koreatrip/config"
	"koreatrip/domain"
	"koreatrip/store"
	"koreatrip/tests/helpers"
)

// fakeVerifier accepts any token and returns a fixed uid, counting calls so
// tests can assert the gate short-circuits before verification.
type fakeVerifier struct {
	uid   string
	err   error
	calls int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.uid, nil
}

// fakeGenerator returns a canned text and records every prompt it was given.
type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fixture struct {
	handler   *api.Handler
	store     *store.MemoryStore
	verifier  *fakeVerifier
	generator *fakeGenerator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := helpers.NewTestStore(t)
	verifier := &fakeVerifier{uid: "user-1"}
	generator := &fakeGenerator{text: "generated text"}
	cfg := &config.Config{APIVersion: "v1", GeminiAPIKey: "test-key"}

	return &fixture{
		handler:   api.NewHandler(st, verifier, generator, cfg, zap.NewNop()),
		store:     st,
		verifier:  verifier,
		generator: generator,
	}
}

func seedTrip(t *testing.T, st *store.MemoryStore, trip domain.Trip) string {
	t.Helper()

	id, err := st.CreateTrip(context.Background(), &trip)
	if err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return id
}
