package room

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/roomba/internal/core"
)

// Parse reads the plain text room description:
//
//	<bound_x> <bound_y>
//	<start_x> <start_y>
//	<dust_x> <dust_y>      (zero or more lines)
//	<directions>           (last non-empty line, e.g. NNESEESWNWW)
//
// Checks run in the order bounds, start, directions, dust, and the first
// failure is returned. Lines are trimmed before use. Blank lines are only
// tolerated after the directions line. When nothing follows the start line
// the direction sequence is empty.
func Parse(r io.Reader, opts ...Option) (*Room, error) {
	o := buildOptions(opts)
	v := validator{log: o.logger}

	lines, err := readLines(r)
	if err != nil {
		return nil, v.fail(&Error{Kind: KindSourceNotFound, Msg: "cannot read input", Err: err})
	}

	last := len(lines) - 1
	for last >= 0 && lines[last] == "" {
		last--
	}
	if last < 0 {
		return nil, v.fail(&Error{Kind: KindMalformedBounds, Line: 1, Msg: "input is empty"})
	}

	bounds, err := parseCoord(lines[0])
	if err != nil {
		return nil, v.fail(&Error{Kind: KindMalformedBounds, Line: 1, Msg: "room bounds: " + err.Error()})
	}
	if err := v.bounds(bounds, 1); err != nil {
		return nil, err
	}

	if last < 1 {
		return nil, v.fail(&Error{Kind: KindMalformedLine, Line: 2, Msg: "missing start position"})
	}
	start, err := parseCoord(lines[1])
	if err != nil {
		return nil, v.fail(&Error{Kind: KindMalformedLine, Line: 2, Msg: "start position: " + err.Error()})
	}
	if err := v.start(start, bounds, 2); err != nil {
		return nil, err
	}

	var (
		dirs      []core.Direction
		dustLines []string
	)
	if last >= 2 {
		dirs, err = v.directions(lines[last], last+1)
		if err != nil {
			return nil, err
		}
		dustLines = lines[2:last]
	}

	dust := core.NewCoordSet()
	for i, l := range dustLines {
		lineNo := i + 3
		c, err := parseCoord(l)
		if err != nil {
			return nil, v.fail(&Error{Kind: KindMalformedLine, Line: lineNo, Msg: "dust position: " + err.Error()})
		}
		if err := v.dust(c, bounds, i, lineNo); err != nil {
			return nil, err
		}
		dust.Add(c)
	}
	v.log.Info("dust positions accepted", "lines", len(dustLines), "unique", dust.Len())

	return &Room{
		bounds:     bounds,
		start:      start,
		dust:       dust,
		directions: dirs,
	}, nil
}

// ParseString is Parse over an in-memory description.
func ParseString(s string, opts ...Option) (*Room, error) {
	return Parse(strings.NewReader(s), opts...)
}

// readLines returns every line of r, trimmed. Lines have no length limit,
// so a direction sequence may be arbitrarily long.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 || err == nil {
			lines = append(lines, strings.TrimSpace(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseCoord splits a line on whitespace and requires exactly two integer
// literals. A leading sign is accepted.
func parseCoord(line string) (core.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return core.Coord{}, fmt.Errorf("expected two integers, got %d tokens in %q", len(fields), line)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Coord{}, fmt.Errorf("%q is not an integer", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Coord{}, fmt.Errorf("%q is not an integer", fields[1])
	}
	return core.C(x, y), nil
}
