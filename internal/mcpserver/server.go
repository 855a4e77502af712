// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the note operations to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/denote/internal/models"
	"github.com/starford/denote/internal/noteservice"
)

// DateLayout is the calendar date format accepted by find_notes_by_date.
const DateLayout = "2006-01-02"

const formatURI = "denote://filename-format"

// Server wraps the MCP server with the note tools.
type Server struct {
	mcp *server.MCPServer
	svc *noteservice.Service
}

// New creates a new MCP server with all note tools registered.
func New(svc *noteservice.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Denote",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note. The file name is derived from the title, "+
			"keywords and the current time; see get_filename_format for the naming scheme."),
		mcp.WithString("title", mcp.Description("Free-form title; reduced to a lowercase slug in the file name")),
		mcp.WithString("keywords", mcp.Description("Space-separated keywords")),
		mcp.WithString("extension", mcp.Description("File extension without the dot (defaults to the configured one)")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a note in the notes directory."),
		mcp.WithString("name", mcp.Required(), mcp.Description("File name of the note")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("find_notes",
		mcp.WithDescription("List notes tagged with every given keyword, oldest first. "+
			"With no keywords every note is returned."),
		mcp.WithString("keywords", mcp.Description("Space-separated keywords, all of which must match")),
	), s.findNotes)

	s.mcp.AddTool(mcp.NewTool("find_notes_by_date",
		mcp.WithDescription("List notes created on a calendar date, oldest first."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date as YYYY-MM-DD")),
	), s.findNotesByDate)

	s.mcp.AddTool(mcp.NewTool("rename_note",
		mcp.WithDescription("Change the title and/or keywords of a note. The identifier and "+
			"extension never change. Omitted fields keep their current value."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File name in the notes directory or absolute path")),
		mcp.WithString("title", mcp.Description("New title; an empty string removes it")),
		mcp.WithString("keywords", mcp.Description("New space-separated keywords; an empty string removes them")),
	), s.renameNote)

	s.mcp.AddTool(mcp.NewTool("list_keywords",
		mcp.WithDescription("List keywords in use, optionally only those starting with a prefix."),
		mcp.WithString("prefix", mcp.Description("Keyword prefix")),
	), s.listKeywords)

	s.mcp.AddTool(mcp.NewTool("get_filename_format",
		mcp.WithDescription("Returns the note file naming scheme. "+
			"Call this before creating or renaming notes."),
	), s.getFilenameFormat)

	s.mcp.AddResource(
		mcp.NewResource(formatURI, "Note File Name Format",
			mcp.WithResourceDescription("How note file names encode identifier, title and keywords."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFilenameFormatResource,
	)

	return s
}

// Serve runs the MCP protocol over in and out until ctx is cancelled or in
// reaches EOF. Transport errors are logged to logger.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("mcpserver: %w", err)
}

// optionalString returns the argument and whether it was given at all.
func optionalString(req mcp.CallToolRequest, key string) (string, bool) {
	v, err := req.RequireString(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, _ := optionalString(req, "title")
	keywords, _ := optionalString(req, "keywords")
	ext, _ := optionalString(req, "extension")

	path, err := s.svc.Create(ctx, title, strings.Fields(keywords), ext)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.svc.Store().Read(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", name)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) findNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keywords, _ := optionalString(req, "keywords")
	notes, err := s.svc.Find(ctx, strings.Fields(keywords))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return notesResult(notes)
}

func (s *Server) findNotesByDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	day, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", raw)), nil
	}
	notes, err := s.svc.FindByDate(ctx, day)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return notesResult(notes)
}

func (s *Server) renameNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	current, err := s.svc.Describe(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	title := current.Name.Title
	if v, ok := optionalString(req, "title"); ok {
		title = v
	}
	keywords := current.Name.Keywords.Slice()
	if v, ok := optionalString(req, "keywords"); ok {
		keywords = strings.Fields(v)
	}

	newPath, err := s.svc.Rename(ctx, path, title, keywords)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("renamed: %s", newPath)), nil
}

func (s *Server) listKeywords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefix, _ := optionalString(req, "prefix")
	keywords, err := s.svc.ListKeywords(ctx, prefix)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(keywords) == 0 {
		return mcp.NewToolResultText("no keywords found"), nil
	}
	return mcp.NewToolResultText(strings.Join(keywords, "\n")), nil
}

func (s *Server) getFilenameFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FilenameFormat), nil
}

func (s *Server) readFilenameFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      formatURI,
			MIMEType: "text/markdown",
			Text:     FilenameFormat,
		},
	}, nil
}

func notesResult(notes []models.Note) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(models.Views(notes), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mcpserver: encode notes: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}
