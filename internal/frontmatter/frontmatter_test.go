package frontmatter

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

var when = time.Date(2024, 3, 22, 13, 18, 56, 0, time.UTC)

func TestRender_Markdown(t *testing.T) {
	out, err := Render("md", Header{
		Title:      "Some Title: with colon",
		Date:       when,
		Tags:       []string{"keyword1", "keyword2"},
		Identifier: "20240322T131856",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "---\n") || !strings.HasSuffix(s, "---\n") {
		t.Fatalf("missing fences: %q", s)
	}

	var got yamlHeader
	if err := yaml.Unmarshal([]byte(strings.Trim(s, "-\n")), &got); err != nil {
		t.Fatalf("header is not valid YAML: %v\n%s", err, s)
	}
	if got.Title != "Some Title: with colon" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Date != "2024-03-22 Fri 13:18" {
		t.Errorf("date = %q", got.Date)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "keyword1" {
		t.Errorf("tags = %v", got.Tags)
	}
	if got.Identifier != "20240322T131856" {
		t.Errorf("identifier = %q", got.Identifier)
	}
}

func TestRender_MarkdownNoTags(t *testing.T) {
	out, err := Render("txt", Header{Title: "x", Date: when, Identifier: "20240322T131856"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "tags: []") {
		t.Errorf("expected empty tag list, got:\n%s", out)
	}
}

func TestRender_Org(t *testing.T) {
	out, err := Render("org", Header{Title: "Plan", Date: when, Tags: []string{"a", "b"}, Identifier: "20240322T131856"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "#+title:      Plan\n" +
		"#+date:       [2024-03-22 Fri 13:18]\n" +
		"#+filetags:   :a:b:\n" +
		"#+identifier: 20240322T131856\n"
	if string(out) != want {
		t.Errorf("org header =\n%s\nwant\n%s", out, want)
	}
}

func TestRender_UnknownExtension(t *testing.T) {
	for _, ext := range []string{"typ", "pdf", "json"} {
		out, err := Render(ext, Header{Title: "x", Date: when})
		if err != nil {
			t.Fatalf("Render(%s): %v", ext, err)
		}
		if len(out) != 0 {
			t.Errorf("Render(%s) = %q, want no header", ext, out)
		}
	}
}
