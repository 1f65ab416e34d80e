package grid

// Default grid settings, matching a 12-column dashboard with 96px cells.
const (
	DefaultCols     = 12
	DefaultRows     = 8
	DefaultCellSize = 96
	DefaultGap      = 16
)

// Alignment positions of the grid inside the page (nine-point anchor).
// Rendering only; the engine ignores them.
const (
	PositionLeftTop     = "lt"
	PositionTop         = "t"
	PositionRightTop    = "rt"
	PositionLeft        = "l"
	PositionCenter      = "c"
	PositionRight       = "r"
	PositionLeftBottom  = "lb"
	PositionBottom      = "b"
	PositionRightBottom = "rb"
)

// ValidPositions is the set of accepted alignment anchors.
var ValidPositions = map[string]bool{
	PositionLeftTop:     true,
	PositionTop:         true,
	PositionRightTop:    true,
	PositionLeft:        true,
	PositionCenter:      true,
	PositionRight:       true,
	PositionLeftBottom:  true,
	PositionBottom:      true,
	PositionRightBottom: true,
}

// Config describes the grid an engine call works against.
// Only Cols affects placement; the other fields travel with the layout for
// whoever draws it.
type Config struct {
	Cols     int    `json:"cols" bson:"cols" toml:"cols"`
	Rows     int    `json:"rows" bson:"rows" toml:"rows"`
	CellSize int    `json:"cell_size" bson:"cell_size" toml:"cell_size"`
	Gap      int    `json:"gap" bson:"gap" toml:"gap"`
	Position string `json:"position,omitempty" bson:"position,omitempty" toml:"position"`
}

// DefaultConfig returns the stock 12×8 grid.
func DefaultConfig() Config {
	return Config{
		Cols:     DefaultCols,
		Rows:     DefaultRows,
		CellSize: DefaultCellSize,
		Gap:      DefaultGap,
		Position: PositionCenter,
	}
}

// PixelSize returns the container size in pixels: n cells plus n+1 gaps on
// each axis.
func (c Config) PixelSize() (width, height int) {
	width = c.Cols*c.CellSize + (c.Cols+1)*c.Gap
	height = c.Rows*c.CellSize + (c.Rows+1)*c.Gap
	return width, height
}

// Rect is an axis-aligned rectangle in cell units.
type Rect struct {
	X, Y, W, H int
}

// Size is a width/height pair in cells.
type Size struct {
	W int `json:"w" bson:"w" toml:"w"`
	H int `json:"h" bson:"h" toml:"h"`
}

// Point is a cell coordinate.
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Item is one placed rectangle: a widget instance or a shortcut.
// ID is owned by the caller and treated as an opaque key.
type Item struct {
	ID string `json:"id" bson:"id"`
	X  int    `json:"x" bson:"x"`
	Y  int    `json:"y" bson:"y"`
	W  int    `json:"w" bson:"w"`
	H  int    `json:"h" bson:"h"`
}

// Rect returns the item's rectangle.
func (it Item) Rect() Rect { return Rect{X: it.X, Y: it.Y, W: it.W, H: it.H} }

// At returns a copy of the item moved to (x, y).
func (it Item) At(x, y int) Item {
	it.X, it.Y = x, y
	return it
}

// Sized returns a copy of the item with size w×h.
func (it Item) Sized(w, h int) Item {
	it.W, it.H = w, h
	return it
}

// Layout is an ordered collection of items with unique ids. Order carries no
// meaning beyond stable iteration.
type Layout []Item

// Index returns the position of id in l, or -1.
func (l Layout) Index(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the item with the given id.
func (l Layout) Find(id string) (Item, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Item{}, false
}

// Clone returns a shallow copy that can be modified without touching l.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Bottom returns the first row below every item (max of y+h), or 0 for an
// empty layout.
func (l Layout) Bottom() int {
	bottom := 0
	for _, it := range l {
		if b := it.Y + it.H; b > bottom {
			bottom = b
		}
	}
	return bottom
}

// IDs returns the item ids in layout order.
func (l Layout) IDs() []string {
	ids := make([]string, len(l))
	for i, it := range l {
		ids[i] = it.ID
	}
	return ids
}

// replace returns a copy of l with the item at index i swapped for it.
func (l Layout) replace(i int, it Item) Layout {
	out := l.Clone()
	out[i] = it
	return out
}
