package datafile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads the raw sales data file. The first line is treated as a
// header and skipped; blank lines are dropped. A missing or unreadable file
// is fatal to the run, so the error is returned to the caller.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)

	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	return lines, nil
}
