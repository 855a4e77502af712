package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/starford/denote/internal/denote"
	"github.com/starford/denote/internal/renamer"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"generic", errors.New("boom"), exitFailure},
		{"collision", fmt.Errorf("%w: x", renamer.ErrCollision), exitCollision},
		{"rename io", fmt.Errorf("%w: x", renamer.ErrIOFailure), exitRenameIO},
		{"rename foreign", fmt.Errorf("%w: x", renamer.ErrNotDenote), exitNotDenote},
		{"decode", &denote.FormatError{Name: "README", Err: denote.ErrBadIdentifier}, exitNotDenote},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Errorf("%s: exitCode = %d, want %d", tc.name, got, tc.want)
		}
	}
}
