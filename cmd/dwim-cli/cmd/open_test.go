package cmd

import "testing"

func TestParseOpenArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantLine int
		wantErr  bool
	}{
		{
			name:     "single path:line argument",
			args:     []string{"/a/b.py:42"},
			wantPath: "/a/b.py",
			wantLine: 42,
		},
		{
			name:     "separate path and line",
			args:     []string{"main.go", "7"},
			wantPath: "main.go",
			wantLine: 7,
		},
		{
			name:     "bare path defaults to line 1",
			args:     []string{"README.md"},
			wantPath: "README.md",
			wantLine: 1,
		},
		{
			name:    "non-numeric line argument",
			args:    []string{"main.go", "seven"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := parseOpenArgs(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", target)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target.Path != tt.wantPath || target.Line != tt.wantLine {
				t.Errorf("target = %v, want %s:%d", target, tt.wantPath, tt.wantLine)
			}
		})
	}
}
