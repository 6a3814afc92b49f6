package prometheus

import (
	"context"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	QueryFunc       func(ctx context.Context, query string, ts time.Time) (model.Vector, v1.Warnings, error)
	QueryRangeFunc  func(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error)
	LabelValuesFunc func(ctx context.Context, label string, matches []string, start, end time.Time) ([]string, v1.Warnings, error)
}

func (m *MockClient) Query(ctx context.Context, query string, ts time.Time) (model.Vector, v1.Warnings, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, ts)
	}
	return nil, nil, nil
}

func (m *MockClient) QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error) {
	if m.QueryRangeFunc != nil {
		return m.QueryRangeFunc(ctx, query, r)
	}
	return nil, nil, nil
}

func (m *MockClient) LabelValues(ctx context.Context, label string, matches []string, start, end time.Time) ([]string, v1.Warnings, error) {
	if m.LabelValuesFunc != nil {
		return m.LabelValuesFunc(ctx, label, matches, start, end)
	}
	return nil, nil, nil
}
