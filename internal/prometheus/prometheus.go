package prometheus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/akasprzok/hues/internal/category"
)

type prometheusClient struct {
	v1api v1.API
}

// Client is the subset of the Prometheus HTTP API the charts need.
type Client interface {
	Query(ctx context.Context, query string, ts time.Time) (model.Vector, v1.Warnings, error)
	QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error)
	LabelValues(ctx context.Context, label string, matches []string, start, end time.Time) ([]string, v1.Warnings, error)
}

func NewClient(url string) (Client, error) {
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	v1api := v1.NewAPI(client)
	return &prometheusClient{v1api: v1api}, nil
}

func (c *prometheusClient) Query(ctx context.Context, query string, ts time.Time) (model.Vector, v1.Warnings, error) {
	result, warnings, err := c.v1api.Query(ctx, query, ts, timeoutOption(ctx)...)
	if err != nil {
		return nil, warnings, err
	}

	switch result.Type() {
	case model.ValVector:
		return result.(model.Vector), warnings, nil
	case model.ValNone, model.ValScalar, model.ValMatrix, model.ValString:
		return nil, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return nil, warnings, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

func (c *prometheusClient) QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error) {
	result, warnings, err := c.v1api.QueryRange(ctx, query, r, timeoutOption(ctx)...)
	if err != nil {
		return nil, warnings, err
	}

	switch result.Type() {
	case model.ValMatrix:
		return result.(model.Matrix), warnings, nil
	case model.ValNone, model.ValScalar, model.ValVector, model.ValString:
		return nil, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return nil, warnings, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

func (c *prometheusClient) LabelValues(ctx context.Context, label string, matches []string, start, end time.Time) ([]string, v1.Warnings, error) {
	values, warnings, err := c.v1api.LabelValues(ctx, label, matches, start, end, timeoutOption(ctx)...)
	if err != nil {
		return nil, warnings, err
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = string(v)
	}
	return result, warnings, nil
}

// timeoutOption forwards the context deadline to the server.
func timeoutOption(ctx context.Context) []v1.Option {
	deadline, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	return []v1.Option{v1.WithTimeout(time.Until(deadline))}
}

// Levels fetches every value label takes across the matching series and
// sorts them with lang's collation, giving queries over any subset of
// those series a shared color assignment.
func Levels(ctx context.Context, c Client, label string, matches []string, start, end time.Time, lang string) (category.Levels, v1.Warnings, error) {
	values, warnings, err := c.LabelValues(ctx, label, matches, start, end)
	if err != nil {
		return category.Levels{}, warnings, fmt.Errorf("fetching values of %q: %w", label, err)
	}
	if len(values) == 0 {
		return category.Levels{}, warnings, fmt.Errorf("label %q has no values", label)
	}
	levels, err := category.FromValues(values, category.OrderSorted, lang)
	return levels, warnings, err
}

var errFound = errors.New("found")

// ColorLabel returns the first label the outermost aggregation of query
// groups by, or "" when it has none. Series of one group share that
// label's value, which makes it the natural category for coloring.
func ColorLabel(query string) (string, error) {
	expr, err := parser.ParseExpr(query)
	if err != nil {
		return "", fmt.Errorf("parsing query: %w", err)
	}
	label := ""
	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		agg, ok := node.(*parser.AggregateExpr)
		if !ok {
			return nil
		}
		if !agg.Without && len(agg.Grouping) > 0 {
			label = agg.Grouping[0]
		}
		return errFound
	})
	return label, nil
}

func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}
