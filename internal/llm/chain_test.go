package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClient is a scripted provider for chain tests
type stubClient struct {
	name   string
	text   string
	err    error
	delay  time.Duration
	calls  int
	closed bool
}

func (s *stubClient) Name() string { return s.name }

func (s *stubClient) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

func TestChain_FirstSuccessWins(t *testing.T) {
	first := &stubClient{name: "first", text: "What brought you to Go?"}
	second := &stubClient{name: "second", text: "unused"}
	chain := NewChain([]Client{first, second}, time.Second, zap.NewNop())

	text, err := chain.Generate(context.Background(), "sys", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "What brought you to Go?", text)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "lower-priority provider not consulted after a success")
}

func TestChain_SkipsFailingProvider(t *testing.T) {
	failing := &stubClient{name: "failing", err: errors.New("rate limited")}
	working := &stubClient{name: "working", text: "  A solid question.  "}
	chain := NewChain([]Client{failing, working}, time.Second, zap.NewNop())

	text, err := chain.Generate(context.Background(), "sys", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "A solid question.", text, "result is trimmed")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
}

func TestChain_EmptyResponseTreatedAsFailure(t *testing.T) {
	blank := &stubClient{name: "blank", text: "   \n  "}
	working := &stubClient{name: "working", text: "Question?"}
	chain := NewChain([]Client{blank, working}, time.Second, zap.NewNop())

	text, err := chain.Generate(context.Background(), "sys", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Question?", text)
}

func TestChain_AllProvidersFail(t *testing.T) {
	a := &stubClient{name: "a", err: errors.New("down")}
	b := &stubClient{name: "b", text: ""}
	chain := NewChain([]Client{a, b}, time.Second, zap.NewNop())

	_, err := chain.Generate(context.Background(), "sys", "prompt")

	var allFailed *AllProvidersError
	require.ErrorAs(t, err, &allFailed)
	assert.Len(t, allFailed.Failures, 2)
	assert.Equal(t, "a", allFailed.Failures[0].Provider)
	assert.Equal(t, "b", allFailed.Failures[1].Provider)
	// One attempt per provider per call, never retried.
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestChain_NoProvidersConfigured(t *testing.T) {
	chain := NewChain(nil, time.Second, zap.NewNop())

	_, err := chain.Generate(context.Background(), "sys", "prompt")

	var allFailed *AllProvidersError
	require.ErrorAs(t, err, &allFailed)
	assert.Empty(t, allFailed.Failures)
}

func TestChain_TimeoutMovesToNextProvider(t *testing.T) {
	hung := &stubClient{name: "hung", text: "too late", delay: 500 * time.Millisecond}
	fast := &stubClient{name: "fast", text: "On time."}
	chain := NewChain([]Client{hung, fast}, 20*time.Millisecond, zap.NewNop())

	start := time.Now()
	text, err := chain.Generate(context.Background(), "sys", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "On time.", text)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "hung provider must not stall the chain")
}

func TestChain_Close(t *testing.T) {
	a := &stubClient{name: "a"}
	b := &stubClient{name: "b"}
	chain := NewChain([]Client{a, b}, time.Second, zap.NewNop())

	require.NoError(t, chain.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestChain_Names(t *testing.T) {
	chain := NewChain([]Client{&stubClient{name: "x"}, &stubClient{name: "y"}}, time.Second, zap.NewNop())
	assert.Equal(t, []string{"x", "y"}, chain.Names())
	assert.Equal(t, 2, chain.Len())
}

func TestProbe_ReportsEveryProvider(t *testing.T) {
	healthy := &stubClient{name: "healthy", text: "OK"}
	broken := &stubClient{name: "broken", err: errors.New("auth failed")}
	chain := NewChain([]Client{healthy, broken}, time.Second, zap.NewNop())

	results := chain.Probe(context.Background())

	require.Len(t, results, 2)
	assert.Equal(t, "healthy", results[0].Provider)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "broken", results[1].Provider)
	assert.Error(t, results[1].Err)
}
