package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/akasprzok/hues/internal/palette"
	"github.com/akasprzok/hues/internal/scheme"
)

const testScheme = `
[palette]
hue_start = 0
hue_end = 360

[levels]
iris = ["setosa", "versicolor", "virginica"]
`

func testContext(t *testing.T, s *scheme.Scheme) (*Context, *bytes.Buffer) {
	t.Helper()
	if s == nil {
		s = scheme.Default()
	}
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return &Context{
		Timeout: 5 * time.Second,
		Log:     logrus.NewEntry(log),
		Out:     &buf,
		Scheme:  s,
	}, &buf
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", "json")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", log.Formatter)
	}

	if _, err := NewLogger("loud", "text"); err == nil {
		t.Error("NewLogger() with unknown level should fail")
	}
}

func TestNewContext(t *testing.T) {
	start, chroma, dir := 90.0, 50.0, -1
	log := logrus.New()

	tests := []struct {
		name    string
		globals Globals
		want    palette.Options
		wantErr error
	}{
		{
			name:    "defaults",
			globals: Globals{},
			want:    palette.DefaultOptions(),
		},
		{
			name:    "hue start keeps default end",
			globals: Globals{HueStart: &start, Chroma: &chroma, Direction: &dir},
			want: palette.Options{
				HueStart:  90,
				HueEnd:    375,
				Chroma:    50,
				Luminance: 65,
				Direction: -1,
			},
		},
		{
			name:    "scheme overrides defaults",
			globals: Globals{Scheme: writeFile(t, "scheme.toml", testScheme)},
			want: palette.Options{
				HueStart:  0,
				HueEnd:    360,
				Chroma:    100,
				Luminance: 65,
				Direction: 1,
			},
		},
		{
			name:    "flag overrides scheme",
			globals: Globals{Scheme: writeFile(t, "scheme.toml", testScheme), HueStart: &start},
			want: palette.Options{
				HueStart:  90,
				HueEnd:    360,
				Chroma:    100,
				Luminance: 65,
				Direction: 1,
			},
		},
		{
			name:    "span over a full turn",
			globals: Globals{HueStart: func() *float64 { v := -10.0; return &v }()},
			wantErr: palette.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewContext(&tt.globals, log)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewContext() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewContext() error = %v", err)
			}
			got, err := ctx.Options()
			if err != nil {
				t.Fatalf("Options() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Options() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewContextHueStartFollowsSchemeEnd(t *testing.T) {
	start := 30.0
	ctx, err := NewContext(&Globals{HueStart: &start}, logrus.New())
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	reloaded, err := scheme.Parse("[palette]\nhue_end = 300\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ctx.Scheme = reloaded

	got, err := ctx.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if got.HueStart != 30 || got.HueEnd != 300 {
		t.Errorf("hue range = %g..%g, want 30..300", got.HueStart, got.HueEnd)
	}
}

func TestNewContextMissingScheme(t *testing.T) {
	g := Globals{Scheme: filepath.Join(t.TempDir(), "missing.toml")}
	if _, err := NewContext(&g, logrus.New()); err == nil {
		t.Error("NewContext() with a missing scheme should fail")
	}
}

func TestGenerateCmd(t *testing.T) {
	tests := []struct {
		name   string
		cmd    GenerateCmd
		want   string
		wantIn []string
	}{
		{
			name: "text",
			cmd:  GenerateCmd{N: 3, Output: "text"},
			want: "#f8766d\n#00ba38\n#619cff\n",
		},
		{
			name: "text with labels",
			cmd:  GenerateCmd{N: 2, Labels: []string{"a", "b"}, Output: "text"},
			want: "#f8766d\ta\n#00bfc4\tb\n",
		},
		{
			name:   "yaml",
			cmd:    GenerateCmd{N: 2, Output: "yaml"},
			wantIn: []string{"#f8766d", "#00bfc4", "index: 1", "luminance: 65"},
		},
		{
			name:   "swatch",
			cmd:    GenerateCmd{N: 2, Labels: []string{"a"}, Output: "swatch"},
			wantIn: []string{"#f8766d a", "#00bfc4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext(t, nil)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if tt.want != "" && buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
			for _, s := range tt.wantIn {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("output %q does not contain %q", buf.String(), s)
				}
			}
		})
	}
}

func TestGenerateCmdJSON(t *testing.T) {
	ctx, buf := testContext(t, nil)
	cmd := GenerateCmd{N: 4, Labels: []string{"a", "b", "c", "d"}, Output: "json"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var records []colorRecord
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	wantHex := []string{"#f8766d", "#7cae00", "#00bfc4", "#c77cff"}
	if len(records) != len(wantHex) {
		t.Fatalf("got %d records, want %d", len(records), len(wantHex))
	}
	for i, r := range records {
		if r.Index != i || r.Hex != wantHex[i] {
			t.Errorf("record %d = %+v, want index %d hex %s", i, r, i, wantHex[i])
		}
		if r.Chroma != 100 || r.Luminance != 65 {
			t.Errorf("record %d chroma/luminance = %g/%g, want 100/65", i, r.Chroma, r.Luminance)
		}
	}
	if records[2].Hue != 195 || records[3].Label != "d" {
		t.Errorf("record values = %+v", records)
	}
}

func TestGenerateCmdErrors(t *testing.T) {
	ctx, _ := testContext(t, nil)
	err := (&GenerateCmd{N: 0, Output: "text"}).Run(ctx)
	if !errors.Is(err, palette.ErrInvalidArgument) {
		t.Errorf("Run() error = %v, want ErrInvalidArgument", err)
	}
}

func TestSelectCmd(t *testing.T) {
	ctx, buf := testContext(t, nil)
	cmd := SelectCmd{FullN: 4, Indices: []int{2, 0}, Output: "json"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var records []colorRecord
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Index != 2 || records[0].Hex != "#00bfc4" {
		t.Errorf("records[0] = %+v, want index 2 #00bfc4", records[0])
	}
	if records[1].Index != 0 || records[1].Hex != "#f8766d" {
		t.Errorf("records[1] = %+v, want index 0 #f8766d", records[1])
	}
}

func TestSelectCmdSwatch(t *testing.T) {
	ctx, buf := testContext(t, nil)
	cmd := SelectCmd{FullN: 5, Indices: []int{0, 2}, Labels: []string{"a", "c"}, Output: "swatch"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %q", len(rows), buf.String())
	}
	if !strings.Contains(rows[0], "  0   15.0° #f8766d a") {
		t.Errorf("row 0 = %q, want index 0", rows[0])
	}
	if !strings.Contains(rows[1], "  2  159.0° #00bf7d c") {
		t.Errorf("row 1 = %q, want index 2", rows[1])
	}
}

func TestSelectCmdErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SelectCmd
		wantErr error
	}{
		{"index past end", SelectCmd{FullN: 3, Indices: []int{3}}, palette.ErrIndexOutOfRange},
		{"negative index", SelectCmd{FullN: 3, Indices: []int{-1}}, palette.ErrIndexOutOfRange},
		{"no indices", SelectCmd{FullN: 3}, palette.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t, nil)
			if err := tt.cmd.Run(ctx); !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSwatchCmd(t *testing.T) {
	s, err := scheme.Parse(`[levels]
iris = ["setosa", "versicolor", "virginica"]
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ctx, buf := testContext(t, s)
	if err := (&SwatchCmd{LevelSet: "iris", Output: "text"}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "#f8766d\tsetosa\n#00ba38\tversicolor\n#619cff\tvirginica\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	// Restricting keeps each category's color from the full set.
	ctx, buf = testContext(t, s)
	if err := (&SwatchCmd{LevelSet: "iris", Only: []string{"virginica"}, Output: "json"}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var records []colorRecord
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if len(records) != 1 || records[0].Index != 2 || records[0].Hex != "#619cff" || records[0].Label != "virginica" {
		t.Errorf("records = %+v, want virginica at index 2 #619cff", records)
	}

	ctx, buf = testContext(t, s)
	if err := (&SwatchCmd{LevelSet: "iris", Only: []string{"virginica"}, Output: "swatch"}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "  2  255.0° #619cff virginica") {
		t.Errorf("swatch = %q, want virginica at index 2", buf.String())
	}

	ctx, _ = testContext(t, s)
	if err := (&SwatchCmd{LevelSet: "cars"}).Run(ctx); !errors.Is(err, scheme.ErrUnknownLevelSet) {
		t.Errorf("Run() error = %v, want ErrUnknownLevelSet", err)
	}
}

func TestCLIParse(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("hues"), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}

	_, err = parser.Parse([]string{"--hue-start", "0", "--direction=-1", "generate", "5", "-o", "json", "-l", "a", "-l", "b"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cli.Generate.N != 5 || cli.Generate.Output != "json" {
		t.Errorf("generate = %+v", cli.Generate)
	}
	if len(cli.Generate.Labels) != 2 {
		t.Errorf("labels = %v, want 2", cli.Generate.Labels)
	}
	if cli.HueStart == nil || *cli.HueStart != 0 {
		t.Errorf("HueStart = %v, want 0", cli.HueStart)
	}
	if cli.HueEnd != nil || cli.Chroma != nil {
		t.Error("unset palette flags should stay nil")
	}
	if cli.Direction == nil || *cli.Direction != -1 {
		t.Errorf("Direction = %v, want -1", cli.Direction)
	}
	if cli.Timeout != time.Minute || cli.LogLevel != "warn" {
		t.Errorf("globals = %+v", cli.Globals)
	}

	cli = CLI{}
	if _, err := parser.Parse([]string{"select", "4", "0", "2"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cli.Select.FullN != 4 || len(cli.Select.Indices) != 2 || cli.Select.Indices[1] != 2 {
		t.Errorf("select = %+v", cli.Select)
	}

	cli = CLI{}
	if _, err := parser.Parse([]string{"query", "sum by (job) (up)", "--label-levels"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cli.Query.LabelLevels || cli.Query.Output != "graph" {
		t.Errorf("query = %+v", cli.Query)
	}

	if _, err := parser.Parse([]string{"generate", "3", "-o", "png"}); err == nil {
		t.Error("Parse() with unknown output should fail")
	}
}
