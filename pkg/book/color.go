package book

import colorful "github.com/lucasb-eyer/go-colorful"

// presetColors is the rotating palette assigned to books added without an
// explicit color.
var presetColors = []string{
	"#ef4444", "#f97316", "#f59e0b", "#84cc16", "#10b981",
	"#06b6d4", "#3b82f6", "#6366f1", "#8b5cf6", "#d946ef",
	"#f43f5e", "#64748b",
}

// DefaultColor is used when no color was picked and no palette slot applies.
const DefaultColor = "#3b82f6"

// ValidColor reports whether value parses as a #rrggbb hex color.
func ValidColor(value string) bool {
	_, err := colorful.Hex(value)
	return err == nil
}

// PaletteColor returns the preset color for the nth book added.
func PaletteColor(n int) string {
	if n < 0 {
		return DefaultColor
	}
	return presetColors[n%len(presetColors)]
}
