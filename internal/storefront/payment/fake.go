package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Ensure FakeGateway implements the port at compile time.
var _ Gateway = (*FakeGateway)(nil)

// CreatedIntent records one CreateIntent call for test assertions.
type CreatedIntent struct {
	Intent      Intent
	AmountCents int64
	Metadata    map[string]string
}

// FakeGateway is an in-memory Gateway for local development and tests.
// Every request succeeds unless Fail is set.
type FakeGateway struct {
	mu      sync.Mutex
	created []CreatedIntent

	// Fail, when non-nil, is returned from every CreateIntent call.
	Fail error
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (f *FakeGateway) CreateIntent(_ context.Context, amountCents int64, metadata map[string]string) (Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Fail != nil {
		return Intent{}, f.Fail
	}

	id := "pi_" + uuid.NewString()
	intent := Intent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_%s", id, uuid.NewString()),
	}
	f.created = append(f.created, CreatedIntent{
		Intent:      intent,
		AmountCents: amountCents,
		Metadata:    metadata,
	})
	return intent, nil
}

// Created returns a copy of every intent created so far.
func (f *FakeGateway) Created() []CreatedIntent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]CreatedIntent, len(f.created))
	copy(out, f.created)
	return out
}
