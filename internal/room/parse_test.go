package room

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/vovakirdan/roomba/internal/core"
	"github.com/vovakirdan/roomba/internal/logging"
)

func TestParseSample(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "sample.txt"))
	if err != nil {
		t.Fatalf("open sample: %v", err)
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if r.Bounds() != core.C(5, 5) {
		t.Errorf("Bounds() = %v, expected (5,5)", r.Bounds())
	}
	if r.Start() != core.C(1, 2) {
		t.Errorf("Start() = %v, expected (1,2)", r.Start())
	}
	if r.DustCount() != 3 {
		t.Errorf("DustCount() = %d, expected 3", r.DustCount())
	}
	for _, c := range []core.Coord{core.C(1, 0), core.C(2, 2), core.C(2, 3)} {
		if !r.HasDust(c) {
			t.Errorf("expected dust at %v", c)
		}
	}
	if got := core.FormatDirections(r.Directions()); got != "NNESEESWNWW" {
		t.Errorf("Directions() = %q, expected %q", got, "NNESEESWNWW")
	}
}

func TestParseDirectionsCaseInsensitive(t *testing.T) {
	r, err := ParseString("3 3\n0 0\nnEsW\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got := core.FormatDirections(r.Directions()); got != "NESW" {
		t.Errorf("Directions() = %q, expected %q", got, "NESW")
	}
}

func TestParseDuplicateDustCollapses(t *testing.T) {
	r, err := ParseString("3 3\n0 0\n1 1\n1 1\n2 2\nN\n")
	if err != nil {
		t.Fatalf("duplicate dust should not fail: %v", err)
	}
	if r.DustCount() != 2 {
		t.Errorf("DustCount() = %d, expected 2", r.DustCount())
	}
}

func TestParseEmptyDirections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bounds and start only", "3 3\n1 1\n"},
		{"trailing blank lines", "3 3\n1 1\n\n\n"},
		{"no trailing newline", "3 3\n1 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseString(tc.input)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if len(r.Directions()) != 0 {
				t.Errorf("expected empty direction sequence, got %d", len(r.Directions()))
			}
			if r.DustCount() != 0 {
				t.Errorf("expected no dust, got %d", r.DustCount())
			}
		})
	}
}

func TestParseToleratesSurroundingWhitespace(t *testing.T) {
	r, err := ParseString("  4   4 \r\n 0\t3\n2 2 \n  NE  \n\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if r.Bounds() != core.C(4, 4) || r.Start() != core.C(0, 3) || !r.HasDust(core.C(2, 2)) {
		t.Errorf("unexpected room: %v", r)
	}
}

func TestParseLongDirectionLine(t *testing.T) {
	const n = 200_000
	input := "3 3\n1 1\n2 2\n" + strings.Repeat("N", n) + "\n"

	r, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}
	if got := len(r.Directions()); got != n {
		t.Errorf("len(Directions()) = %d, expected %d", got, n)
	}
	if !r.HasDust(core.C(2, 2)) {
		t.Error("dust line before the long direction line was lost")
	}

	// Without a trailing newline as well.
	r, err = ParseString(strings.TrimSuffix(input, "\n"))
	if err != nil {
		t.Fatalf("ParseString() without final newline failed: %v", err)
	}
	if got := len(r.Directions()); got != n {
		t.Errorf("len(Directions()) = %d, expected %d", got, n)
	}
}

func TestParseReadFailure(t *testing.T) {
	_, err := Parse(iotest.ErrReader(errors.New("disk gone")))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("error = %v, expected kind %s", err, KindSourceNotFound)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Error
		line     int
	}{
		{"empty input", "", ErrMalformedBounds, 1},
		{"single bound token", "2\n0 0\nN\n", ErrMalformedBounds, 1},
		{"three bound tokens", "2 2 2\n0 0\nN\n", ErrMalformedBounds, 1},
		{"non-integer bound", "a 2\n0 0\nN\n", ErrMalformedBounds, 1},
		{"negative bound", "-1 5\n0 0\nN\n", ErrMalformedBounds, 1},
		{"missing start", "3 3\n", ErrMalformedLine, 2},
		{"malformed start", "3 3\n1\nN\n", ErrMalformedLine, 2},
		{"start outside room", "3 3\n5 5\nN\n", ErrInvalidStartPosition, 2},
		{"negative start", "3 3\n-1 0\nN\n", ErrInvalidStartPosition, 2},
		{"start on x bound", "3 3\n3 0\nN\n", ErrInvalidStartPosition, 2},
		{"zero-sized room", "0 0\n0 0\nN\n", ErrInvalidStartPosition, 2},
		{"bad direction", "3 3\n0 0\nNXE\n", ErrInvalidDirectionToken, 3},
		{"direction with space", "3 3\n0 0\nN E\n", ErrInvalidDirectionToken, 3},
		{"dust outside room", "3 3\n0 0\n1 1\n3 1\nN\n", ErrInvalidDustPosition, 4},
		{"malformed dust", "3 3\n0 0\n1 x\nN\n", ErrMalformedLine, 3},
		{"blank dust line", "3 3\n0 0\n\n1 1\nN\n", ErrMalformedLine, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseString(tc.input)
			if err == nil {
				t.Fatalf("expected %s, got room %v", tc.expected.Kind, r)
			}
			if r != nil {
				t.Error("no partial room should be returned on failure")
			}
			if !errors.Is(err, tc.expected) {
				t.Fatalf("error = %v, expected kind %s", err, tc.expected.Kind)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if perr.Line != tc.line {
				t.Errorf("Line = %d, expected %d", perr.Line, tc.line)
			}
		})
	}
}

func TestParseDirectionErrorNamesCharacter(t *testing.T) {
	_, err := ParseString("3 3\n0 0\nNNX\n")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if perr.Char != 'X' {
		t.Errorf("Char = %q, expected 'X'", perr.Char)
	}
	if !strings.Contains(err.Error(), "'X'") {
		t.Errorf("error message %q should name the character", err.Error())
	}
}

func TestParseDustErrorCarriesBlockIndex(t *testing.T) {
	_, err := ParseString("3 3\n0 0\n0 1\n1 1\n9 9\nN\n")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if perr.Kind != KindInvalidDustPosition {
		t.Fatalf("Kind = %s, expected %s", perr.Kind, KindInvalidDustPosition)
	}
	if perr.Index != 2 {
		t.Errorf("Index = %d, expected 2", perr.Index)
	}
	if perr.Line != 5 {
		t.Errorf("Line = %d, expected 5", perr.Line)
	}
}

func TestParseDirectionsCheckedBeforeDust(t *testing.T) {
	_, err := ParseString("3 3\n0 0\n9 9\nQ\n")
	if KindOf(err) != KindInvalidDirectionToken {
		t.Errorf("KindOf() = %q, expected %q", KindOf(err), KindInvalidDirectionToken)
	}
}

func TestParseLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "INFO")
	if err != nil {
		t.Fatalf("logging.New() failed: %v", err)
	}

	if _, err := ParseString("3 3\n0 0\nN\n", WithLogger(logger)); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "room bounds accepted") {
		t.Errorf("expected info record for bounds, got %q", buf.String())
	}

	buf.Reset()
	if _, err := ParseString("3 3\n7 7\nN\n", WithLogger(logger)); err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(buf.String(), "ERRO") {
		t.Errorf("expected error record before failure, got %q", buf.String())
	}
}
