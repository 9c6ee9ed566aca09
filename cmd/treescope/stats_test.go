package main

import (
	"testing"
)

func TestStatsCommand(t *testing.T) {
	tests := []struct {
		name           string
		doc            string
		depth          int
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:  "stats yaml config",
			doc:   "config.yaml",
			depth: 3,
			wantContain: []string{
				"Tree Statistics:",
				"Total: 8",
				"object: 2",
				"array: 1",
				"string: 3",
				"number: 1",
				"bool: 1",
				"Expanded: 3",
				"Circular: 0",
				"Max Depth: 2 levels",
			},
			wantNotContain: []string{"unreadable"},
		},
		{
			name:  "stats with depth limit",
			doc:   "config.yaml",
			depth: 1,
			wantContain: []string{
				"Total: 3",
				"object: 2",
				"array: 1",
				"Expanded: 1",
				"Max Depth: 1 levels",
			},
			wantNotContain: []string{"string: "},
		},
		{
			name:        "stats as JSON",
			doc:         "config.yaml",
			depth:       3,
			wantJSON:    true,
			wantContain: []string{"\"TotalNodes\": 8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCommandState()
			jsonOut = tt.wantJSON
			statsDepth = tt.depth
			statsLabel = "root"

			args := []string{testDocPath(t, tt.doc)}

			output, err := captureOutput(t, func() error {
				return runStats(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runStats() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				decodeJSON(t, output)
			}

			assertContains(t, output, tt.wantContain...)
			assertNotContains(t, output, tt.wantNotContain...)
		})
	}
}
