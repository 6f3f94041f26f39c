package battle

import "context"

// Run steps m as fast as possible until it is done or ctx is cancelled.
// Cancellation is only observed between ticks.
func Run(ctx context.Context, m *Match) (Result, error) {
	for !m.Done() {
		if err := ctx.Err(); err != nil {
			return m.Result(), err
		}
		if err := m.Step(); err != nil {
			return m.Result(), err
		}
	}
	return m.Result(), nil
}
