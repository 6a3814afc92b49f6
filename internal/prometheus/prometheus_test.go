package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "valid URL",
			url:     "http://localhost:9090",
			wantErr: false,
		},
		{
			name:    "valid URL with path",
			url:     "http://prometheus.example.com/api/v1",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && client == nil {
				t.Error("NewClient() returned nil client for valid URL")
			}
		})
	}
}

func TestFormatQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "simple metric",
			query: "up",
			want:  "up",
		},
		{
			name:  "metric with labels",
			query: "up{job=\"prometheus\"}",
			want:  "up{job=\"prometheus\"}",
		},
		{
			name:  "sum aggregation",
			query: "sum(rate(http_requests_total[5m]))",
			want:  "sum(rate(http_requests_total[5m]))",
		},
		{
			name:  "invalid query returns original",
			query: "invalid{{{",
			want:  "invalid{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQuery(tt.query)
			if got != tt.want {
				t.Errorf("FormatQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorLabel(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{name: "no aggregation", query: "up", want: ""},
		{name: "by one label", query: "sum by (job) (rate(http_requests_total[5m]))", want: "job"},
		{name: "by several labels", query: "sum by (job, instance) (up)", want: "job"},
		{name: "without", query: "sum without (instance) (up)", want: ""},
		{name: "outermost wins", query: "topk(3, sum by (job) (up))", want: ""},
		{name: "aggregation under function", query: "rate(sum by (mode) (node_cpu_seconds_total)[5m:])", want: "mode"},
		{name: "invalid query", query: "invalid{{{", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorLabel(tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorLabel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ColorLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevels(t *testing.T) {
	client := &MockClient{
		LabelValuesFunc: func(_ context.Context, label string, matches []string, _, _ time.Time) ([]string, v1.Warnings, error) {
			if label != "job" {
				t.Errorf("label = %q, want job", label)
			}
			if len(matches) != 1 || matches[0] != "up" {
				t.Errorf("matches = %v, want [up]", matches)
			}
			return []string{"prometheus", "node", "grafana"}, v1.Warnings{"partial"}, nil
		},
	}

	levels, warnings, err := Levels(context.Background(), client, "job", []string{"up"}, time.Time{}, time.Now(), "")
	if err != nil {
		t.Fatalf("Levels() error = %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("len(warnings) = %d, want 1", len(warnings))
	}
	want := []string{"grafana", "node", "prometheus"}
	got := levels.Names()
	if len(got) != len(want) {
		t.Fatalf("Levels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Levels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLevelsErrors(t *testing.T) {
	tests := []struct {
		name   string
		client *MockClient
	}{
		{
			name: "api error",
			client: &MockClient{LabelValuesFunc: func(context.Context, string, []string, time.Time, time.Time) ([]string, v1.Warnings, error) {
				return nil, nil, errors.New("boom")
			}},
		},
		{
			name:   "no values",
			client: &MockClient{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Levels(context.Background(), tt.client, "job", nil, time.Time{}, time.Now(), "")
			if err == nil {
				t.Error("Levels() error = nil, want error")
			}
		})
	}
}

func TestClientAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/query":
			fmt.Fprint(w, `{"status":"success","data":{"resultType":"vector","result":[{"metric":{"job":"node"},"value":[1700000000,"1"]}]}}`)
		case "/api/v1/query_range":
			fmt.Fprint(w, `{"status":"success","data":{"resultType":"matrix","result":[{"metric":{"job":"node"},"values":[[1700000000,"1"],[1700000060,"2"]]}]}}`)
		case "/api/v1/label/job/values":
			fmt.Fprint(w, `{"status":"success","data":["grafana","node"]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	vector, _, err := client.Query(ctx, "up", time.Now())
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(vector) != 1 || vector[0].Metric["job"] != "node" {
		t.Errorf("Query() = %v, want one node sample", vector)
	}

	matrix, _, err := client.QueryRange(ctx, "up", v1.Range{Start: time.Now().Add(-time.Hour), End: time.Now(), Step: time.Minute})
	if err != nil {
		t.Fatalf("QueryRange() error = %v", err)
	}
	if len(matrix) != 1 || len(matrix[0].Values) != 2 {
		t.Errorf("QueryRange() = %v, want one stream of two points", matrix)
	}

	values, _, err := client.LabelValues(ctx, "job", nil, time.Time{}, time.Now())
	if err != nil {
		t.Fatalf("LabelValues() error = %v", err)
	}
	if len(values) != 2 || values[0] != "grafana" {
		t.Errorf("LabelValues() = %v, want [grafana node]", values)
	}
}

func TestQueryRejectsMatrix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":{"resultType":"matrix","result":[]}}`)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if _, _, err := client.Query(context.Background(), "up[5m]", time.Now()); err == nil {
		t.Error("Query() error = nil, want unexpected result type")
	}
}
