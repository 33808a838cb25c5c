package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestNewCellEncoding(t *testing.T) {
	tests := []struct {
		alive, dead, separator byte
		valid                  bool
	}{
		{'*', '_', '\n', true},
		{'o', '.', '|', true},
		{'*', '*', '\n', false},
		{'*', '_', '*', false},
		{'*', '_', '_', false},
	}

	for _, tc := range tests {
		enc, err := NewCellEncoding(tc.alive, tc.dead, tc.separator)
		if tc.valid {
			if err != nil {
				t.Fatalf("NewCellEncoding(%q, %q, %q): %v", tc.alive, tc.dead, tc.separator, err)
			}
			if !enc.IsValid() {
				t.Fatalf("encoding %+v reported invalid", enc)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("NewCellEncoding(%q, %q, %q) error = %v, want %v", tc.alive, tc.dead, tc.separator, err, ErrInvalidEncoding)
		}
	}

	if !DefaultCellEncoding().IsValid() {
		t.Fatalf("default encoding is invalid")
	}
}

func TestCellEncodingEncodeDecode(t *testing.T) {
	enc := DefaultCellEncoding()
	if enc.Encode(Alive) != '*' || enc.Encode(Dead) != '_' {
		t.Fatalf("unexpected encoding of cells")
	}

	for _, s := range []CellState{Alive, Dead} {
		got, err := enc.Decode(enc.Encode(s))
		if err != nil || got != s {
			t.Fatalf("decode(encode(%v)) = %v, %v", s, got, err)
		}
	}

	for _, c := range []byte{'X', '\n', ' ', 0} {
		if _, err := enc.Decode(c); !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("decode(%q) error = %v, want %v", c, err, ErrInvalidCharacter)
		}
	}
}

func TestRectangle(t *testing.T) {
	tests := []struct {
		rect           Rectangle
		length, height int
	}{
		{Rectangle{}, 0, 0},
		{Rectangle{Left: 1, Top: 2, Right: 4, Bottom: 3}, 3, 1},
		{Rectangle{Left: 4, Top: 0, Right: 1, Bottom: 2}, 0, 2},
		{Rectangle{Left: 0, Top: 5, Right: 2, Bottom: 5}, 2, 0},
	}
	for _, tc := range tests {
		if tc.rect.Length() != tc.length || tc.rect.Height() != tc.height {
			t.Fatalf("%+v is %dx%d, want %dx%d", tc.rect, tc.rect.Length(), tc.rect.Height(), tc.length, tc.height)
		}
		if tc.rect.IsEmpty() != (tc.length == 0 || tc.height == 0) {
			t.Fatalf("%+v IsEmpty = %v", tc.rect, tc.rect.IsEmpty())
		}
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, DefaultCellEncoding())

	b := &Board{}
	if err := DefaultCellEncoding().LoadBoard(strings.NewReader("___\n_*_\n_**\n"), b); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := r.Display("blinker", b); err != nil {
		t.Fatalf("display: %v", err)
	}
	if want := "== blinker\n*_\n**\n"; buf.String() != want {
		t.Fatalf("displayed %q, want %q", buf.String(), want)
	}
}
