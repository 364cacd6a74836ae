package llm

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// probePrompt is a minimal request used to check provider reachability.
const probePrompt = "Reply with the single word OK."

// ProbeResult reports one provider's reachability
type ProbeResult struct {
	Provider string
	Err      error
}

// Probe checks every configured provider concurrently and reports
// per-provider reachability in priority order. Unlike Generate, it does not
// stop at the first success: the point is a full health picture.
func (c *Chain) Probe(ctx context.Context) []ProbeResult {
	results := make([]ProbeResult, len(c.clients))

	group, groupCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for i, client := range c.clients {
		i, client := i, client
		group.Go(func() error {
			_, err := c.attempt(groupCtx, client, "", probePrompt)
			mu.Lock()
			results[i] = ProbeResult{Provider: client.Name(), Err: err}
			mu.Unlock()
			return nil
		})
	}

	// Workers always return nil; errors are carried in the results.
	_ = group.Wait()
	return results
}
