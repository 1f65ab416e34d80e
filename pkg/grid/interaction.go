package grid

// ProposalKind distinguishes the two interactive gestures.
type ProposalKind int

const (
	// ProposeMove drags the item to a new origin.
	ProposeMove ProposalKind = iota
	// ProposeResize changes the item's size in place.
	ProposeResize
)

// Proposal is the position or size requested by one pointer event.
type Proposal struct {
	Kind ProposalKind
	X, Y int // origin, for ProposeMove
	W, H int // size, for ProposeResize
}

// MoveTo proposes moving an item to (x, y).
func MoveTo(x, y int) Proposal { return Proposal{Kind: ProposeMove, X: x, Y: y} }

// ResizeTo proposes resizing an item to w×h.
func ResizeTo(w, h int) Proposal { return Proposal{Kind: ProposeResize, W: w, H: h} }

// Snapshot is the committed layout captured when a drag or resize starts.
// All previews for the interaction are computed from it.
type Snapshot struct {
	base Layout
	cfg  Config
}

// BeginInteraction captures l as the base for an interaction.
func BeginInteraction(l Layout, cfg Config) Snapshot {
	return Snapshot{base: l.Clone(), cfg: cfg}
}

// Base returns a copy of the captured layout.
func (s Snapshot) Base() Layout { return s.base.Clone() }

// Config returns the grid the snapshot was taken against.
func (s Snapshot) Config() Config { return s.cfg }

// Preview computes the candidate layout for proposal p applied to item id.
// It always starts from the snapshot, never from an earlier preview.
func (s Snapshot) Preview(id string, p Proposal) Layout {
	return s.Apply(id, p).Layout
}

// Commit computes the final layout for the interaction. It is the same
// computation as Preview; the caller stores the result.
func (s Snapshot) Commit(id string, p Proposal) Layout {
	return s.Apply(id, p).Layout
}

// Apply resolves p against the snapshot and reports the outcome.
func (s Snapshot) Apply(id string, p Proposal) Resolution {
	switch p.Kind {
	case ProposeResize:
		return ResolveSize(id, p.W, p.H, s.base, s.cfg)
	default:
		return Resolve(id, p.X, p.Y, s.base, s.cfg)
	}
}

// AddItem appends a new w×h item at the first free position from row 0.
// An id already present leaves l unchanged.
func AddItem(l Layout, id string, w, h int, cfg Config) Layout {
	return AddItemFrom(l, id, w, h, cfg, 0)
}

// AddItemFrom is AddItem with the free-position scan starting at startRow.
func AddItemFrom(l Layout, id string, w, h int, cfg Config, startRow int) Layout {
	if l.Index(id) >= 0 {
		return l
	}
	pos := FindFreePosition(l, w, h, cfg.Cols, startRow)
	out := make(Layout, len(l), len(l)+1)
	copy(out, l)
	return append(out, Item{ID: id, X: pos.X, Y: pos.Y, W: w, H: h})
}

// RemoveItem returns l without item id.
func RemoveItem(l Layout, id string) Layout {
	if l.Index(id) < 0 {
		return l
	}
	out := make(Layout, 0, len(l)-1)
	for _, it := range l {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
