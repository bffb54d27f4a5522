package resolver

import (
	"context"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

// Mutation status strings returned to the client. Failures are reported
// through the status value, not through a GraphQL error.
const (
	statusSuccess = "Success"
	statusError   = "Error"
)

// status collapses a service error into the mutation status string. The
// error itself is logged and swallowed.
func (r *Resolver) status(ctx context.Context, op string, err error) (string, error) {
	if err != nil {
		r.log.WarnContext(ctx, "mutation failed", "op", op, "error", err)
		return statusError, nil
	}
	return statusSuccess, nil
}

// derefCords converts a list of coordinate pointers into values, skipping
// nil entries.
func derefCords(in []*domain.Cord) []domain.Cord {
	out := make([]domain.Cord, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		out = append(out, *c)
	}
	return out
}
