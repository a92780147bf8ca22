package plans

import (
	"context"

	"github.com/JaimeStill/floorplan/internal/housespec"
	"github.com/JaimeStill/floorplan/pkg/pagination"
)

// System defines the plan operations available to a session.
type System interface {
	Handler() *Handler

	// Open resolves id to a session, creating one when id is empty or unknown.
	Open(id string) (*Session, bool)
	// End discards a session and its plans.
	End(sessionID string)

	List(sessionID string, page pagination.PageRequest) (*pagination.PageResult[Plan], error)
	Find(sessionID string, index int) (*Plan, error)
	Image(sessionID string, index int) (*Download, error)
	Spec(sessionID string, index int) (housespec.Draft, error)

	// Generate builds the prompt for in, renders it, and appends the result.
	// Nothing is appended when rendering fails.
	Generate(ctx context.Context, sessionID string, in housespec.Input) (*Generation, error)
	// Regenerate renders the input of the plan at index, or override when
	// non-nil, and appends the result. The original plan is kept.
	Regenerate(ctx context.Context, sessionID string, index int, override *housespec.Input) (*Generation, error)

	RequestDelete(sessionID string, index int) (Pending, error)
	RequestClear(sessionID string) (Pending, error)
	Pending(sessionID string) (*Pending, error)
	Confirm(sessionID, token string) (*Outcome, error)
	Cancel(sessionID, token string) error

	// Export uploads the image of the plan at index to blob storage.
	Export(ctx context.Context, sessionID string, index int) (*Export, error)
}
