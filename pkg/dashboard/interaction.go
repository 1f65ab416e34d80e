package dashboard

import (
	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
)

// InteractionKind is the gesture being performed.
type InteractionKind int

const (
	Drag InteractionKind = iota
	Resize
)

func (k InteractionKind) String() string {
	if k == Resize {
		return "resize"
	}
	return "drag"
}

// ParseInteractionKind accepts "drag" or "resize".
func ParseInteractionKind(s string) (InteractionKind, error) {
	switch s {
	case "drag", "move":
		return Drag, nil
	case "resize":
		return Resize, nil
	}
	return Drag, errors.New(errors.ErrCodeInvalidInput, "unknown interaction kind %q", s)
}

// Interaction is an active drag or resize of one item.
type Interaction struct {
	Kind     InteractionKind
	ItemID   string
	Snapshot grid.Snapshot

	// Proposal is the latest pointer position or size; nil until the
	// pointer first moves.
	Proposal *grid.Proposal
	Preview  grid.Layout
	Outcome  grid.Outcome
}

// Result returns the layout a commit would produce now.
func (in *Interaction) Result() grid.Layout {
	if in.Proposal == nil {
		return in.Snapshot.Base()
	}
	return in.Snapshot.Commit(in.ItemID, *in.Proposal)
}
