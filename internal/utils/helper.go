package utils

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// ParseIDs splits a list of document IDs separated by commas and/or whitespace.
// Order is preserved and empty entries are dropped.
func ParseIDs(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ReadIDsFile reads document IDs from a file, one or more per line.
// Lines starting with # are ignored.
func ReadIDsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ID file: %w", err)
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, ParseIDs(line)...)
	}
	return ids, nil
}

// MergeIDs appends the IDs of extra that are not already in ids
func MergeIDs(ids []string, extra ...string) []string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range extra {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func ExitOnError(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
