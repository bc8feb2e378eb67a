package mcp

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"dwim/internal/domain"
	"dwim/internal/ports"
)

type stubEditor struct {
	visited []domain.Target
}

func (s *stubEditor) Name() string { return "sublime" }

func (s *stubEditor) Args(path string, line int) []string {
	return []string{domain.Target{Path: path, Line: line}.Arg()}
}

func (s *stubEditor) VisitFile(path string, line int) error {
	s.visited = append(s.visited, domain.Target{Path: path, Line: line})
	return nil
}

func (s *stubEditor) Command(path string, line int) (*exec.Cmd, error) {
	return exec.Command("true"), nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestExtractHandler(t *testing.T) {
	handler := extractHandler()

	res, err := handler(context.Background(), callRequest(map[string]any{
		"text": "pkg/a.go:12: undefined: frob\n",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %v", res.Content)
	}
	if got := textContent(t, res); !strings.Contains(got, "pkg/a.go:12") {
		t.Errorf("result = %q", got)
	}
}

func TestExtractHandlerNoText(t *testing.T) {
	handler := extractHandler()

	res, err := handler(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for missing text")
	}
}

func TestOpenHandler(t *testing.T) {
	ed := &stubEditor{}
	handler := openHandler(ed, nil)

	res, err := handler(context.Background(), callRequest(map[string]any{
		"path": "/a/b.py",
		"line": 42,
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %v", res.Content)
	}
	if len(ed.visited) != 1 || ed.visited[0] != (domain.Target{Path: "/a/b.py", Line: 42}) {
		t.Errorf("visited = %v", ed.visited)
	}
}

func TestOpenHandlerMissingPath(t *testing.T) {
	handler := openHandler(&stubEditor{}, nil)

	res, err := handler(context.Background(), callRequest(map[string]any{"line": 1}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for missing path")
	}
}

var _ ports.Editor = (*stubEditor)(nil)
