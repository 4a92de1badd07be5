// Package suite reads perft test suites: one SFEN position per line followed
// by the expected node counts, e.g.
//
//	lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1 ;D1 30 ;D2 900
//
// Lines starting with '#' are comments. Files written by Japanese shogi tools
// are often Shift-JIS encoded; they are decoded before parsing.
package suite

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/jiro/shogi/internal/sfen"
)

// Expectation is the node count expected at one depth.
type Expectation struct {
	Depth int
	Nodes uint64
}

// Case is one position of a suite.
type Case struct {
	Line     int
	SFEN     string
	Position *sfen.Position
	Expected []Expectation
}

// Load reads a suite file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cases, err := Read(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// decode returns the file contents as UTF-8, stripping a BOM and converting
// from Shift-JIS when the data is not valid UTF-8.
func decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", errors.New("failed to decode Shift-JIS suite")
	}
	return string(decoded), nil
}

// Read parses suite lines from r, which must be UTF-8.
func Read(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		c.Line = lineNo
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseLine(line string) (Case, error) {
	parts := strings.Split(line, ";")
	record := strings.TrimSpace(parts[0])
	pos, ok := sfen.Parse(record)
	if !ok {
		return Case{}, fmt.Errorf("invalid SFEN: %q", record)
	}

	c := Case{SFEN: record, Position: pos}
	for _, part := range parts[1:] {
		fields := strings.Fields(part)
		if len(fields) != 2 || !strings.HasPrefix(fields[0], "D") {
			return Case{}, fmt.Errorf("invalid expectation: %q", strings.TrimSpace(part))
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil || depth < 1 {
			return Case{}, fmt.Errorf("invalid depth: %q", fields[0])
		}
		nodes, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return Case{}, fmt.Errorf("invalid node count: %q", fields[1])
		}
		c.Expected = append(c.Expected, Expectation{Depth: depth, Nodes: nodes})
	}
	return c, nil
}
