package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akasprzok/hues/internal/palette"
)

// Swatch renders one row per color: a block of the color, its index, hue,
// hex code and, when present, its label. indices gives each color's
// position in the full palette; without it rows are numbered from 0.
func Swatch(p palette.Palette, indices []int, labels []string) string {
	block := strings.Repeat("█", SwatchWidth)
	rows := make([]string, len(p))
	for i, c := range p {
		idx := i
		if i < len(indices) {
			idx = indices[i]
		}
		row := fmt.Sprintf("%s %3d %6.1f° %s",
			lipgloss.NewStyle().Foreground(Color(c)).Render(block), idx, c.Hue, c.Hex())
		if i < len(labels) && labels[i] != "" {
			row += " " + labels[i]
		}
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
