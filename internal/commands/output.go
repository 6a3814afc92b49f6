package commands

import (
	"encoding/json"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v2"

	"github.com/akasprzok/hues/internal/charts"
	"github.com/akasprzok/hues/internal/palette"
	"github.com/akasprzok/hues/internal/tables"
)

type colorRecord struct {
	Index     int     `json:"index" yaml:"index"`
	Hue       float64 `json:"hue" yaml:"hue"`
	Chroma    float64 `json:"chroma" yaml:"chroma"`
	Luminance float64 `json:"luminance" yaml:"luminance"`
	Hex       string  `json:"hex" yaml:"hex"`
	Label     string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// paletteRecords pairs colors with their index in the full palette and
// an optional label.
func paletteRecords(p palette.Palette, indices []int, labels []string) []colorRecord {
	records := make([]colorRecord, len(p))
	for i, c := range p {
		idx := i
		if i < len(indices) {
			idx = indices[i]
		}
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		records[i] = colorRecord{
			Index:     idx,
			Hue:       c.Hue,
			Chroma:    c.Chroma,
			Luminance: c.Luminance,
			Hex:       c.Hex(),
			Label:     label,
		}
	}
	return records
}

// writePalette prints p in format: text (one hex code per line), json,
// yaml, swatch, or an interactive table.
func writePalette(ctx *Context, p palette.Palette, indices []int, labels []string, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(paletteRecords(p, indices, labels), "", "  ")
		if err != nil {
			return err
		}
		return ctx.printf("%s\n", data)
	case "yaml":
		data, err := yaml.Marshal(paletteRecords(p, indices, labels))
		if err != nil {
			return err
		}
		return ctx.printf("%s", data)
	case "swatch":
		return ctx.printf("%s\n", charts.Swatch(p, indices, labels))
	case "table":
		_, err := tea.NewProgram(tables.PaletteModel(p, indices, labels)).Run()
		return err
	default:
		var b strings.Builder
		for i, c := range p {
			b.WriteString(c.Hex())
			if i < len(labels) && labels[i] != "" {
				b.WriteString("\t")
				b.WriteString(labels[i])
			}
			b.WriteString("\n")
		}
		return ctx.printf("%s", b.String())
	}
}
