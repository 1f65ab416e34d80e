package grid

// Outcome classifies how a move was resolved.
type Outcome int

const (
	// OutcomeNoop means the item was not found; the layout is unchanged.
	OutcomeNoop Outcome = iota
	// OutcomeMoved means the target area was empty.
	OutcomeMoved
	// OutcomeSwapped means a single same-size item traded places with the mover.
	OutcomeSwapped
	// OutcomePushed means overlapped items were relocated to nearby free slots.
	OutcomePushed
	// OutcomeResized means the item's size changed; neighbours were left alone.
	OutcomeResized
)

var outcomeNames = [...]string{
	OutcomeNoop:    "noop",
	OutcomeMoved:   "moved",
	OutcomeSwapped: "swapped",
	OutcomePushed:  "pushed",
	OutcomeResized: "resized",
}

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Resolution is the full result of a resolver call.
type Resolution struct {
	Layout  Layout
	Outcome Outcome
	// Displaced lists the ids of the other items that changed position,
	// in the order they were relocated.
	Displaced []string
}

// ResolveMove moves item id to (newX, newY) and returns the resulting layout.
// See [Resolve] for the rules.
func ResolveMove(id string, newX, newY int, base Layout, cfg Config) Layout {
	return Resolve(id, newX, newY, base, cfg).Layout
}

// Resolve computes the layout after moving item id to (newX, newY) in base.
//
// The target is clamped to the grid columns first. Then:
//
//   - nothing overlaps the target: only the mover changes
//   - exactly one item overlaps and it has the mover's size: the two swap,
//     the other item taking the mover's original position
//   - otherwise every overlapped item, in layout order, is pushed to
//     [FindNearestEmptyPosition] anchored at its own position, searching the
//     layout as it stands after the mover and earlier pushes
//
// The swap rule has one exception: when the vacated slot would still
// intersect the mover's new rectangle, as with adjacent same-size items, a
// plain swap would leave the pair overlapping, so the move is resolved by
// pushing instead.
//
// An unknown id returns base unchanged.
func Resolve(id string, newX, newY int, base Layout, cfg Config) Resolution {
	idx := base.Index(id)
	if idx < 0 {
		return Resolution{Layout: base, Outcome: OutcomeNoop}
	}
	moving := base[idx]
	newX = ClampX(newX, moving.W, cfg.Cols)
	newY = ClampY(newY)
	target := moving.At(newX, newY)

	overlapping := FindOverlapping(target.Rect(), base, id)

	if len(overlapping) == 0 {
		return Resolution{Layout: base.replace(idx, target), Outcome: OutcomeMoved}
	}

	if len(overlapping) == 1 {
		other := overlapping[0]
		vacated := other.At(moving.X, moving.Y)
		if other.W == moving.W && other.H == moving.H && !Overlaps(vacated.Rect(), target.Rect()) {
			out := base.replace(idx, target)
			out[out.Index(other.ID)] = vacated
			return Resolution{
				Layout:    out,
				Outcome:   OutcomeSwapped,
				Displaced: []string{other.ID},
			}
		}
	}

	return push(idx, target, overlapping, base, cfg)
}

// push relocates every overlapped item in discovery order. Each search runs
// against the layout as already updated, so later items avoid the slots taken
// by earlier ones.
func push(idx int, target Item, overlapping []Item, base Layout, cfg Config) Resolution {
	out := base.replace(idx, target)
	resolved := map[string]bool{target.ID: true}
	displaced := make([]string, 0, len(overlapping))

	for _, it := range overlapping {
		if resolved[it.ID] {
			continue
		}
		pos := FindNearestEmptyPosition(it.X, it.Y, it.W, it.H, out, it.ID, cfg.Cols)
		out[out.Index(it.ID)] = it.At(pos.X, pos.Y)
		resolved[it.ID] = true
		displaced = append(displaced, it.ID)
	}

	return Resolution{Layout: out, Outcome: OutcomePushed, Displaced: displaced}
}

// ResolveResize sets item id to size newW×newH. The width is clamped so the
// item stays inside the columns and both dimensions are at least 1.
//
// Resizes do not push neighbours: growing an item over another leaves the
// overlap in the result.
func ResolveResize(id string, newW, newH int, base Layout, cfg Config) Layout {
	return ResolveSize(id, newW, newH, base, cfg).Layout
}

// ResolveSize is [ResolveResize] with the outcome attached.
func ResolveSize(id string, newW, newH int, base Layout, cfg Config) Resolution {
	idx := base.Index(id)
	if idx < 0 {
		return Resolution{Layout: base, Outcome: OutcomeNoop}
	}
	it := base[idx]
	newW = max(1, min(newW, cfg.Cols-it.X))
	newH = max(1, newH)
	return Resolution{Layout: base.replace(idx, it.Sized(newW, newH)), Outcome: OutcomeResized}
}
