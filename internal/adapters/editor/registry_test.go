package editor

import (
	"errors"
	"fmt"
	"testing"

	"dwim/internal/adapters/logfile"
	"dwim/internal/application"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		editor     string
		executable string
		wantExe    string
		wantErr    bool
	}{
		{
			name:    "sublime with default executable",
			editor:  "sublime",
			wantExe: "subl",
		},
		{
			name:       "sublime with override",
			editor:     "sublime",
			executable: "/opt/subl",
			wantExe:    "/opt/subl",
		},
		{
			name:    "vim",
			editor:  "vim",
			wantExe: "vim",
		},
		{
			name:    "nvim",
			editor:  "nvim",
			wantExe: "nvim",
		},
		{
			name:    "vscode",
			editor:  "vscode",
			wantExe: "code",
		},
		{
			name:    "emacs",
			editor:  "emacs",
			wantExe: "emacsclient",
		},
		{
			name:    "unknown backend",
			editor:  "butterfly",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, err := New(tt.editor, tt.executable, logfile.Nop())

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, application.ErrUnknownEditor) {
					t.Errorf("expected ErrUnknownEditor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ed.Name() != tt.editor {
				t.Errorf("Name() = %q, want %q", ed.Name(), tt.editor)
			}

			cmd, err := ed.Command("/tmp/x.go", 3)
			if err != nil {
				t.Fatalf("Command: %v", err)
			}
			if cmd.Args[0] != tt.wantExe {
				t.Errorf("executable = %q, want %q", cmd.Args[0], tt.wantExe)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 5 {
		t.Fatalf("expected 5 backends, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestBackendArgConventions(t *testing.T) {
	log := logfile.Nop()
	tests := []struct {
		editor string
		want   []string
	}{
		{editor: "sublime", want: []string{"/a/b.py:7"}},
		{editor: "vim", want: []string{"+7", "/a/b.py"}},
		{editor: "vscode", want: []string{"--goto", "/a/b.py:7"}},
		{editor: "emacs", want: []string{"+7", "/a/b.py"}},
	}

	for _, tt := range tests {
		t.Run(tt.editor, func(t *testing.T) {
			ed, err := New(tt.editor, "", log)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got := ed.Args("/a/b.pyc", 7)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Args = %v, want %v", got, tt.want)
			}
		})
	}
}
