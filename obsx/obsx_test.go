package obsx

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name:    "valid options",
			opts:    Options{ServiceName: "netgen", ServiceVersion: "1.0.0"},
			wantErr: false,
		},
		{
			name:    "missing service name",
			opts:    Options{ServiceVersion: "1.0.0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(context.Background(), tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer provider.Shutdown(context.Background())
		})
	}
}

func TestRecordGeneration(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, Options{ServiceName: "netgen"})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	provider.RecordGeneration(ctx, Generation{Species: 2, AuxVars: 1, Duration: time.Millisecond})
	provider.RecordGeneration(ctx, Generation{Code: "NOT_FOUND", Duration: time.Millisecond})

	path := filepath.Join(t.TempDir(), "netgen.prom")
	if err := provider.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"netgen_runs", `code="OK"`, `code="NOT_FOUND"`, "netgen_run_duration_seconds"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile misses %s:\n%s", want, data)
		}
	}
}
