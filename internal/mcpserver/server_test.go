package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/denote/internal/models"
	"github.com/starford/denote/internal/noteservice"
	"github.com/starford/denote/internal/testutil"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir, store := testutil.TestVault(t)
	svc := noteservice.NewService(store, noteservice.Settings{
		DefaultExtension: "md",
		Now:              func() time.Time { return time.Date(2024, 3, 22, 13, 18, 56, 0, time.Local) },
	}, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return New(svc, "test"), dir
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "create_note":
		result, err = srv.createNote(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "find_notes":
		result, err = srv.findNotes(ctx, req)
	case "find_notes_by_date":
		result, err = srv.findNotesByDate(ctx, req)
	case "rename_note":
		result, err = srv.renameNote(ctx, req)
	case "list_keywords":
		result, err = srv.listKeywords(ctx, req)
	case "get_filename_format":
		result, err = srv.getFilenameFormat(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func decodeNotes(t *testing.T, r *mcp.CallToolResult) []models.NoteView {
	t.Helper()
	if r.IsError {
		t.Fatalf("tool error: %s", resultText(r))
	}
	var views []models.NoteView
	if err := json.Unmarshal([]byte(resultText(r)), &views); err != nil {
		t.Fatalf("decode %q: %v", resultText(r), err)
	}
	return views
}

func TestCreateAndReadNote(t *testing.T) {
	srv, dir := testServer(t)

	r := callTool(t, srv, "create_note", map[string]interface{}{
		"title":    "Some Title!",
		"keywords": "Keyword1 keyword1 Keyword2",
	})
	name := "20240322T131856--some-title__keyword1_keyword2.md"
	if text := resultText(r); text != "created: "+filepath.Join(dir, name) {
		t.Errorf("create result = %q", text)
	}

	r = callTool(t, srv, "read_note", map[string]interface{}{"name": name})
	if r.IsError {
		t.Fatalf("read_note: %s", resultText(r))
	}
}

func TestReadNoteMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_note", map[string]interface{}{"name": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}

func TestFindNotes(t *testing.T) {
	srv, dir := testServer(t)
	testutil.Touch(t, dir,
		"20240101T000000--one__a_b.md",
		"20240102T000000--two__a.md",
		"README.md",
	)

	views := decodeNotes(t, callTool(t, srv, "find_notes", map[string]interface{}{"keywords": "a"}))
	if len(views) != 2 || views[0].Title != "one" || views[1].Title != "two" {
		t.Errorf("find a = %+v", views)
	}

	views = decodeNotes(t, callTool(t, srv, "find_notes", map[string]interface{}{"keywords": "a b"}))
	if len(views) != 1 || views[0].Identifier != "20240101T000000" {
		t.Errorf("find a b = %+v", views)
	}

	views = decodeNotes(t, callTool(t, srv, "find_notes", map[string]interface{}{"keywords": "missing"}))
	if len(views) != 0 {
		t.Errorf("find missing = %+v", views)
	}
}

func TestFindNotesByDate(t *testing.T) {
	srv, dir := testServer(t)
	testutil.Touch(t, dir, "20240101T120000--noon.md", "20240102T000000--next.md")

	views := decodeNotes(t, callTool(t, srv, "find_notes_by_date", map[string]interface{}{"date": "2024-01-01"}))
	if len(views) != 1 || views[0].Title != "noon" {
		t.Errorf("by date = %+v", views)
	}

	r := callTool(t, srv, "find_notes_by_date", map[string]interface{}{"date": "01/01/2024"})
	if !r.IsError {
		t.Error("expected error for malformed date")
	}
}

func TestRenameNote_KeepsOmittedFields(t *testing.T) {
	srv, dir := testServer(t)
	testutil.Touch(t, dir, "20240101T000000--old-title__a_b.md")

	r := callTool(t, srv, "rename_note", map[string]interface{}{
		"path":  "20240101T000000--old-title__a_b.md",
		"title": "New Title",
	})
	want := filepath.Join(dir, "20240101T000000--new-title__a_b.md")
	if text := resultText(r); text != "renamed: "+want {
		t.Errorf("rename title = %q", text)
	}

	r = callTool(t, srv, "rename_note", map[string]interface{}{
		"path":     want,
		"keywords": "",
	})
	want = filepath.Join(dir, "20240101T000000--new-title.md")
	if text := resultText(r); text != "renamed: "+want {
		t.Errorf("drop keywords = %q", text)
	}
}

func TestRenameNote_Collision(t *testing.T) {
	srv, dir := testServer(t)
	testutil.Touch(t, dir, "20240101T000000--a.md", "20240101T000000--b.md")

	r := callTool(t, srv, "rename_note", map[string]interface{}{
		"path":  "20240101T000000--a.md",
		"title": "b",
	})
	if !r.IsError {
		t.Fatalf("expected collision error, got %q", resultText(r))
	}
	if got := testutil.ReadFile(t, dir, "20240101T000000--b.md"); got != "20240101T000000--b.md" {
		t.Errorf("existing file was modified: %q", got)
	}
}

func TestRenameNote_Foreign(t *testing.T) {
	srv, dir := testServer(t)
	testutil.Touch(t, dir, "notes.txt")
	r := callTool(t, srv, "rename_note", map[string]interface{}{"path": "notes.txt", "title": "x"})
	if !r.IsError {
		t.Error("expected error for foreign file")
	}
}

func TestListKeywords(t *testing.T) {
	srv, dir := testServer(t)

	r := callTool(t, srv, "list_keywords", map[string]interface{}{})
	if text := resultText(r); text != "no keywords found" {
		t.Errorf("empty = %q", text)
	}

	testutil.Touch(t, dir, "20240101T000000__keyword1_other.md", "20240102T000000__keyword2.md")
	r = callTool(t, srv, "list_keywords", map[string]interface{}{"prefix": "key"})
	if text := resultText(r); text != "keyword1\nkeyword2" {
		t.Errorf("prefix key = %q", text)
	}
}

func TestGetFilenameFormat(t *testing.T) {
	srv, _ := testServer(t)
	text := resultText(callTool(t, srv, "get_filename_format", nil))
	if !strings.Contains(text, "YYYYMMDDThhmmss") {
		t.Errorf("format text missing identifier layout:\n%s", text)
	}
}
