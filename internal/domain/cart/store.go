package cart

import "context"

// Store persists cart lines per cart session. Implementations are
// best-effort: callers treat a failed load as an empty cart and only
// log a failed save.
type Store interface {
	Load(ctx context.Context, cartID string) ([]Line, error)
	Save(ctx context.Context, cartID string, lines []Line) error
}
