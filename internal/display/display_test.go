package display

import (
	"bytes"
	"testing"

	"github.com/starford/denote/internal/denote"
	"github.com/starford/denote/internal/models"
)

func note(t *testing.T, path, name string) models.Note {
	t.Helper()
	n, err := denote.Decode(name)
	if err != nil {
		t.Fatal(err)
	}
	return models.Note{Path: path + name, Name: n}
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	err := p.Notes([]models.Note{
		note(t, "/notes/", "20240101T000000--a__x.md"),
		note(t, "/notes/", "20240102T000000.txt"),
	})
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	want := "/notes/20240101T000000--a__x.md\n/notes/20240102T000000.txt\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Color(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).WithColor(true)
	if err := p.Notes([]models.Note{note(t, "/notes/", "20240101T000000--a__x_y.md")}); err != nil {
		t.Fatalf("Notes: %v", err)
	}
	want := "/notes/" + colorIdentifier + "20240101T000000" + colorReset + "--a__" +
		colorKeyword + "x" + colorReset + "_" + colorKeyword + "y" + colorReset + ".md\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_ColorUsesNameOnDisk(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).WithColor(true)
	// Decoding drops the repeated keyword, so the re-encoded name differs.
	if err := p.Notes([]models.Note{note(t, "/notes/", "20240101T000000__a_a.md")}); err != nil {
		t.Fatalf("Notes: %v", err)
	}
	want := "/notes/" + colorIdentifier + "20240101T000000" + colorReset + "__" +
		colorKeyword + "a" + colorReset + "_" + colorKeyword + "a" + colorReset + ".md\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_ColorBareName(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf).WithColor(true).Path("20240101T000000--x.md"); err != nil {
		t.Fatal(err)
	}
	want := colorIdentifier + "20240101T000000" + colorReset + "--x.md\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf).Lines([]string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a\nb\n" {
		t.Errorf("output = %q", buf.String())
	}
}
