package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v2"

	"github.com/akasprzok/hues/internal/category"
	"github.com/akasprzok/hues/internal/prometheus"
)

type QueryRangeCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." env:"HUES_PROMETHEUS_URL" name:"prometheus-url" default:"http://localhost:9090"`
	Query         string        `arg:"" name:"query" help:"Query to run." required:"true"`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" short:"s" help:"Query resolution step." default:"1m"`
	Output        string        `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`

	ColorFlags
}

func (q *QueryRangeCmd) Run(ctx *Context) error {
	if q.Step <= 0 {
		q.Step = DefaultQueryStep
	}
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}

	label := q.colorLabel(ctx, q.Query)
	setupCtx, cancel := context.WithTimeout(context.Background(), ctx.Timeout)
	fixed, err := q.fixedScale(setupCtx, ctx, client, label)
	cancel()
	if err != nil {
		return err
	}
	resolve := func(names []string) (*category.Scale, error) {
		return resultScale(ctx, fixed, names)
	}

	if q.Output != "graph" {
		return q.print(ctx, client, label, resolve)
	}

	m := NewQueryRangeModel(client, q.Query, q.Range, q.Step, ctx.Timeout, label, resolve)
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	// Extract the final model to check for errors
	if qrm, ok := finalModel.(QueryRangeModel); ok {
		logWarnings(ctx, qrm.warnings)
		if qrm.err != nil {
			return qrm.err
		}
	}
	return nil
}

func (q *QueryRangeCmd) print(ctx *Context, client prometheus.Client, label string, resolve func([]string) (*category.Scale, error)) error {
	queryCtx, cancel := context.WithTimeout(context.Background(), ctx.Timeout)
	defer cancel()

	end := time.Now()
	matrix, warnings, err := client.QueryRange(queryCtx, q.Query, v1.Range{Start: end.Add(-q.Range), End: end, Step: q.Step})
	logWarnings(ctx, warnings)
	if err != nil {
		return err
	}

	names := matrixCategories(matrix, label)
	scale, err := resolve(names)
	if err != nil {
		return err
	}
	data, err := formatMatrix(matrix, names, scale, warnings)
	if err != nil {
		return err
	}

	var out []byte
	if q.Output == "yaml" {
		out, err = yaml.Marshal(data)
	} else {
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("formatting %s: %w", q.Output, err)
	}
	return ctx.printf("%s", out)
}

func formatMatrix(matrix model.Matrix, names []string, scale *category.Scale, warnings v1.Warnings) (map[string]any, error) {
	colors, err := seriesColors(scale, names)
	if err != nil {
		return nil, err
	}
	data := make([]map[string]any, 0, len(matrix))
	for i, sample := range matrix {
		values := make([]map[string]any, 0, len(sample.Values))
		for _, value := range sample.Values {
			values = append(values, map[string]any{
				"timestamp": value.Timestamp.Unix(),
				"value":     value.Value,
			})
		}
		data = append(data, map[string]any{
			"metric":   sample.Metric,
			"category": names[i],
			"color":    colors[i],
			"values":   values,
		})
	}
	return map[string]any{
		"data":     data,
		"warnings": warnings,
	}, nil
}
