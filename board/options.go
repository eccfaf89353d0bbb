package board

import (
	"log/slog"

	"github.com/nrfta/noticeboard-go/metrics"
)

// RoleAdmin is the role allowed to author notices.
const RoleAdmin = "ADMIN"

// Identity is the signed-in user as seen by the notice board.
// Notices are only fetched once a user id is known.
type Identity struct {
	UserID string
	Role   string
}

// CanAuthor reports whether the identity may write notices. It only toggles
// the write affordance; listing does not depend on it.
func (i Identity) CanAuthor() bool {
	return i.Role == RoleAdmin
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records fetch outcomes and committed searches on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithIdentity sets the identity known at construction time.
// Without one, Mount does not fetch until Identify is called.
func WithIdentity(identity Identity) Option {
	return func(c *Controller) {
		c.identity = identity
	}
}
