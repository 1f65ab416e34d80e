package widget

import "github.com/echotab/echotab/pkg/grid"

const builtinVersion = "1.0.0"

// Builtins returns the manifests shipped with echotab, in display order.
func Builtins() []Manifest {
	return []Manifest{
		{
			ID:          "clock",
			Name:        "Clock",
			Description: "Current time and date with 12/24 hour display",
			Icon:        "⏰",
			DefaultSize: grid.Size{W: 4, H: 2},
			MinSize:     grid.Size{W: 2, H: 1},
			MaxSize:     grid.Size{W: 8, H: 4},
			Tags:        []string{"time", "tools", "utility"},
			Category:    "productivity",
		},
		{
			ID:                "weather",
			Name:              "Weather",
			Description:       "Live weather with geolocation and city search",
			Icon:              "🌤️",
			DefaultSize:       grid.Size{W: 5, H: 3},
			MinSize:           grid.Size{W: 3, H: 1},
			MaxSize:           grid.Size{W: 8, H: 6},
			Tags:              []string{"weather", "utility", "information"},
			Category:          "information",
			DefaultBackground: true,
		},
		{
			ID:          "search",
			Name:        "Search",
			Description: "Search box for Google, Bing, Baidu and DuckDuckGo",
			Icon:        "🔍",
			DefaultSize: grid.Size{W: 5, H: 1},
			MinSize:     grid.Size{W: 3, H: 1},
			MaxSize:     grid.Size{W: 10, H: 2},
			Tags:        []string{"search", "tools", "utility"},
			Category:    "productivity",
		},
		{
			ID:                "todo",
			Name:              "Todo",
			Description:       "Task list with completion and removal",
			Icon:              "✓",
			DefaultSize:       grid.Size{W: 4, H: 4},
			MinSize:           grid.Size{W: 3, H: 3},
			MaxSize:           grid.Size{W: 6, H: 8},
			Tags:              []string{"todo", "tasks", "productivity"},
			Category:          "productivity",
			DefaultBackground: true,
		},
		{
			ID:                "note",
			Name:              "Note",
			Description:       "Markdown notes, one per widget instance",
			Icon:              "📝",
			DefaultSize:       grid.Size{W: 4, H: 4},
			MinSize:           grid.Size{W: 3, H: 3},
			MaxSize:           grid.Size{W: 8, H: 8},
			Tags:              []string{"notes", "markdown", "productivity"},
			Category:          "productivity",
			DefaultBackground: true,
		},
		{
			ID:                "speeddial",
			Name:              "SpeedDial",
			Description:       "Jump to bookmarked sites with single letter keys",
			Icon:              "⌨️",
			DefaultSize:       grid.Size{W: 6, H: 4},
			MinSize:           grid.Size{W: 5, H: 3},
			MaxSize:           grid.Size{W: 10, H: 6},
			Tags:              []string{"shortcuts", "keyboard", "navigation"},
			Category:          "productivity",
			DefaultBackground: true,
		},
		{
			ID:                "quote",
			Name:              "Quote",
			Description:       "A random quote from people, films and books",
			Icon:              "💬",
			DefaultSize:       grid.Size{W: 5, H: 3},
			MinSize:           grid.Size{W: 4, H: 2},
			MaxSize:           grid.Size{W: 8, H: 6},
			Tags:              []string{"quotes", "inspiration", "text"},
			Category:          "information",
			DefaultBackground: true,
		},
	}
}

// RegisterBuiltins installs [Builtins] into r.
func RegisterBuiltins(r *Registry) {
	for _, m := range Builtins() {
		m.Type = KindBuiltin
		m.Version = builtinVersion
		m.Author = "EchoTab"
		// ids are non-empty, Register cannot fail
		_ = r.Register(m)
	}
}

// NewBuiltinRegistry returns a registry preloaded with the builtin widgets.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry(nil)
	RegisterBuiltins(r)
	return r
}
