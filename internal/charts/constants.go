package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for timeseries chart height.
	MinChartHeight = 8

	// SwatchWidth is the number of block runes drawn per swatch row.
	SwatchWidth = 6

	// DefaultWidth is used when the terminal size cannot be read.
	DefaultWidth = 80
)
