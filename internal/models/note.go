// Package models defines the domain types shared by the outer layers.
package models

import (
	"time"

	"github.com/starford/denote/internal/denote"
)

// Entry is one immediate file of the notes directory.
type Entry struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Note is a decoded Denote file.
type Note struct {
	Path string
	Name denote.NoteName
}

// NoteView is the serializable form of a Note.
type NoteView struct {
	Path       string   `json:"path"`
	Identifier string   `json:"identifier"`
	Title      string   `json:"title,omitempty"`
	Keywords   []string `json:"keywords"`
	Extension  string   `json:"extension"`
}

// View converts n to its serializable form.
func (n Note) View() NoteView {
	return NoteView{
		Path:       n.Path,
		Identifier: n.Name.Identifier,
		Title:      n.Name.DisplayTitle(),
		Keywords:   n.Name.Keywords.Slice(),
		Extension:  n.Name.Extension,
	}
}

// Paths returns the paths of notes, keeping their order.
func Paths(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Path
	}
	return out
}

// Views converts notes to their serializable form, keeping their order.
func Views(notes []Note) []NoteView {
	out := make([]NoteView, len(notes))
	for i, n := range notes {
		out[i] = n.View()
	}
	return out
}
