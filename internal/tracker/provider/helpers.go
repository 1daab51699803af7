package provider

import (
	"strings"
	"time"
)

// Upstream timestamps arrive either as RFC3339 or as a bare local layout.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

func parseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}

func firstTimestamp(values ...string) *time.Time {
	for _, v := range values {
		if ts := parseTimestamp(v); ts != nil {
			return ts
		}
	}
	return nil
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func orNA(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return "N/A"
}
