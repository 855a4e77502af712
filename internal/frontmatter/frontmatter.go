// Package frontmatter renders the header written at the top of a new note.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is how the creation date appears in a header.
const DateLayout = "2006-01-02 Mon 15:04"

const delim = "---"

// Header is the metadata repeated inside a new note.
type Header struct {
	Title      string
	Date       time.Time
	Tags       []string
	Identifier string
}

type yamlHeader struct {
	Title      string   `yaml:"title"`
	Date       string   `yaml:"date"`
	Tags       []string `yaml:"tags"`
	Identifier string   `yaml:"identifier"`
}

// Render returns the header for a note with the given extension. Markdown and
// plain text get a YAML block, org files get in-buffer settings, anything else
// gets no header at all.
func Render(ext string, h Header) ([]byte, error) {
	switch strings.ToLower(ext) {
	case "md", "markdown", "txt":
		return renderYAML(h)
	case "org":
		return renderOrg(h), nil
	default:
		return nil, nil
	}
}

func renderYAML(h Header) ([]byte, error) {
	tags := h.Tags
	if tags == nil {
		tags = []string{}
	}
	body, err := yaml.Marshal(yamlHeader{
		Title:      h.Title,
		Date:       h.Date.Format(DateLayout),
		Tags:       tags,
		Identifier: h.Identifier,
	})
	if err != nil {
		return nil, fmt.Errorf("frontmatter: marshal: %w", err)
	}
	var b bytes.Buffer
	b.WriteString(delim + "\n")
	b.Write(body)
	b.WriteString(delim + "\n")
	return b.Bytes(), nil
}

func renderOrg(h Header) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "#+title:      %s\n", h.Title)
	fmt.Fprintf(&b, "#+date:       [%s]\n", h.Date.Format(DateLayout))
	if len(h.Tags) > 0 {
		fmt.Fprintf(&b, "#+filetags:   :%s:\n", strings.Join(h.Tags, ":"))
	} else {
		b.WriteString("#+filetags:\n")
	}
	fmt.Fprintf(&b, "#+identifier: %s\n", h.Identifier)
	return b.Bytes()
}
