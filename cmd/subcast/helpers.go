package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLineNumber converts a 1-based line number argument to a 0-based
// position.
func parseLineNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid line number %q", arg)
	}
	return n - 1, nil
}

// parseIndexList converts a comma-separated list of 1-based numbers to
// 0-based positions. An empty string yields an empty list.
func parseIndexList(arg string) ([]int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return []int{}, nil
	}
	parts := strings.Split(arg, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid index %q", part)
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

func truncateText(text string, max int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}
