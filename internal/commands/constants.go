package commands

import "time"

const (
	// DefaultQueryStep is the default step interval for range queries.
	DefaultQueryStep = time.Minute

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// LevelLookback is how far back label values are fetched for --label-levels.
	LevelLookback = 24 * time.Hour
)
