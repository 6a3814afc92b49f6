package dataset

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisCSV = `species,sepal_length,sepal_width
setosa,5.1,3.5
versicolor,7.0,3.2
virginica,6.3,
`

func TestReadCSV(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(irisCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"species", "sepal_length", "sepal_width"}, tab.Columns())
	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, tab.MustColumn("species"))
	assert.Equal(t, []float64{5.1, 7.0, 6.3}, tab.MustColumn("sepal_length"))

	width := tab.MustColumn("sepal_width").([]float64)
	assert.Equal(t, 3.5, width[0])
	assert.True(t, math.IsNaN(width[2]))
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"duplicate header", "a,a\n1,2\n"},
		{"empty header", "a,\n1,2\n"},
		{"ragged row", "a,b\n1,2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tab.Len())
	assert.Equal(t, []string{}, tab.MustColumn("a"))
}

func TestLonger(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("state,high,low\nAlabama,122,-27\nAlaska,100,-80\n"))
	require.NoError(t, err)

	long, err := Longer(tab, "kind", "temperature", "high", "low")
	require.NoError(t, err)

	assert.Equal(t, []string{"state", "kind", "temperature"}, long.Columns())
	assert.Equal(t, []string{"Alabama", "Alabama", "Alaska", "Alaska"}, long.MustColumn("state"))
	assert.Equal(t, []string{"high", "low", "high", "low"}, long.MustColumn("kind"))
	assert.Equal(t, []float64{122, -27, 100, -80}, long.MustColumn("temperature"))
}

func TestLongerErrors(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(irisCSV))
	require.NoError(t, err)

	tests := []struct {
		name       string
		key, value string
		cols       []string
	}{
		{"no columns", "k", "v", nil},
		{"missing column", "k", "v", []string{"petal_length"}},
		{"mixed types", "k", "v", []string{"species", "sepal_length"}},
		{"repeated column", "k", "v", []string{"sepal_length", "sepal_length"}},
		{"key collides", "species", "v", []string{"sepal_length"}},
		{"key equals value", "k", "k", []string{"sepal_length"}},
		{"empty key", "", "v", []string{"sepal_length"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Longer(tab, tt.key, tt.value, tt.cols...)
			assert.Error(t, err)
		})
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(irisCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tab))
	assert.Equal(t, "species,sepal_length,sepal_width\nsetosa,5.1,3.5\nversicolor,7,3.2\nvirginica,6.3,\n", buf.String())
}
