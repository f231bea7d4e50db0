package agent

import (
	"context"
	"sync"

	"bibliomate/internal/agent/deps"
)

// fakeLLM records calls and returns a canned reply
type fakeLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	calls   int
	history []deps.Turn
	message string
	config  deps.GenerationConfig
}

func (f *fakeLLM) Chat(_ context.Context, history []deps.Turn, message string, config deps.GenerationConfig) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.history = history
	f.message = message
	f.config = config
	return f.reply, f.err
}

func (f *fakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
