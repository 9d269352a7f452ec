// SPDX-License-Identifier: MIT

// Package parser reads and writes valve records in the line format
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Singular and plural wording are both accepted in any combination. A valve
// without tunnels is written as "Valve XX has flow rate=N; no tunnels".
// Blank lines and lines starting with '#' are skipped.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/katalvlaran/volcano/core"
)

var (
	// ErrMalformedRecord is returned for a line that does not match the record grammar.
	ErrMalformedRecord = errors.New("parser: malformed valve record")

	// ErrReadFailed is returned when the underlying reader fails.
	ErrReadFailed = errors.New("parser: read failed")
)

var (
	recordRe = regexp.MustCompile(
		`^Valve (\w+) has flow rate=(\d+); (?:tunnels? leads? to valves? (\w+(?:, \w+)*)|no tunnels)$`,
	)
)

// ParseLine parses one record.
func ParseLine(line string) (core.Valve, error) {
	line = strings.TrimSpace(line)
	m := recordRe.FindStringSubmatch(line)
	if m == nil {
		return core.Valve{}, zerr.With(ErrMalformedRecord, "record", line)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return core.Valve{}, zerr.With(zerr.With(ErrMalformedRecord, "record", line), "rate", m[2])
	}
	v := core.Valve{ID: m[1], Rate: rate}
	if m[3] != "" {
		v.Tunnels = strings.Split(m[3], ", ")
	}

	return v, nil
}

// Parse reads every record from r. The first malformed line aborts parsing;
// the error carries its 1-based line number.
func Parse(r io.Reader) ([]core.Valve, error) {
	var (
		out []core.Valve
		n   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := ParseLine(line)
		if err != nil {
			return nil, zerr.With(err, "line", n)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return out, nil
}

// FormatValve renders v as one record, choosing singular wording for a
// single tunnel.
func FormatValve(v core.Valve) string {
	var sb strings.Builder
	sb.WriteString("Valve ")
	sb.WriteString(v.ID)
	sb.WriteString(" has flow rate=")
	sb.WriteString(strconv.Itoa(v.Rate))
	switch len(v.Tunnels) {
	case 0:
		sb.WriteString("; no tunnels")
	case 1:
		sb.WriteString("; tunnel leads to valve ")
		sb.WriteString(v.Tunnels[0])
	default:
		sb.WriteString("; tunnels lead to valves ")
		sb.WriteString(strings.Join(v.Tunnels, ", "))
	}

	return sb.String()
}

// Format writes one record per line.
func Format(w io.Writer, valves []core.Valve) error {
	bw := bufio.NewWriter(w)
	for _, v := range valves {
		if _, err := bw.WriteString(FormatValve(v) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
