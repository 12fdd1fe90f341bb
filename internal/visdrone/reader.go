package visdrone

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// SkippedLine records one annotation line that failed to parse. The line
// number is 1-based so it can be pasted straight into an editor.
type SkippedLine struct {
	Line   int
	Reason string
}

// ParseFile reads one annotation file and returns its well-formed rows in
// file order together with the lines that were skipped. Blank lines are
// ignored silently; malformed lines are reported but never abort the file,
// so one corrupt row cannot invalidate a whole sequence.
func ParseFile(path string) ([]Row, []SkippedLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open annotation file: %w", err)
	}
	defer f.Close()

	var rows []Row
	var skipped []SkippedLine

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		row, err := ParseRow(line)
		if err != nil {
			skipped = append(skipped, SkippedLine{Line: lineNo, Reason: err.Error()})
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read annotation file: %w", err)
	}

	return rows, skipped, nil
}
