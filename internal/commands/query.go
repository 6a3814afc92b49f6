package commands

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v2"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/charts"
	"github.com/akasprzok/hues/internal/prometheus"
	"github.com/akasprzok/hues/internal/tables"
)

type QueryCmd struct {
	PrometheusURL string `help:"URL of the Prometheus endpoint." env:"HUES_PROMETHEUS_URL" name:"prometheus-url" default:"http://localhost:9090"`
	Query         string `arg:"" name:"query" help:"Query to run." required:"true"`
	Output        string `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,table,json,yaml"`

	ColorFlags
}

func (q *QueryCmd) Run(ctx *Context) error {
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}

	queryCtx, cancel := context.WithTimeout(context.Background(), ctx.Timeout)
	defer cancel()

	label := q.colorLabel(ctx, q.Query)
	fixed, err := q.fixedScale(queryCtx, ctx, client, label)
	if err != nil {
		return err
	}

	vector, warnings, err := client.Query(queryCtx, q.Query, time.Now())
	logWarnings(ctx, warnings)
	if err != nil {
		return err
	}
	ctx.logger("query").WithField("samples", len(vector)).Debug("query done")
	if len(vector) == 0 {
		return ctx.printf("No Data\n")
	}

	scale, err := resultScale(ctx, fixed, vectorCategories(vector, label))
	if err != nil {
		return err
	}

	switch q.Output {
	case "table":
		m, err := tables.VectorModel(vector, scale, label)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m).Run()
		return err
	case "json":
		data, err := massageVector(vector, scale, label)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		return ctx.printf("%s\n", out)
	case "yaml":
		data, err := massageVector(vector, scale, label)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		return ctx.printf("%s", out)
	default:
		return charts.NewNtCharts(ctx.Out, scale, label, charts.TerminalWidth()).PrintVector(vector)
	}
}

func massageVector(vector model.Vector, scale *category.Scale, label string) ([]map[string]interface{}, error) {
	names := vectorCategories(vector, label)
	colors, err := seriesColors(scale, names)
	if err != nil {
		return nil, err
	}
	data := make([]map[string]interface{}, 0, len(vector))
	for i, sample := range vector {
		data = append(data, map[string]interface{}{
			"metric":    sample.Metric,
			"value":     sample.Value,
			"timestamp": sample.Timestamp.Unix(),
			"category":  names[i],
			"color":     colors[i],
		})
	}
	return data, nil
}
