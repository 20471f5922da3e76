package models

import "fmt"

// OutputMode selects what the extract command emits.
type OutputMode string

const (
	// OutputJSON emits the chosen result as a structured record.
	OutputJSON OutputMode = "json"
	// OutputText emits the extracted plain text only.
	OutputText OutputMode = "text"
	// OutputAll runs every backend and emits the full comparison.
	OutputAll OutputMode = "all"
)

// ParseOutputMode validates an --output flag value.
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case OutputJSON, OutputText, OutputAll:
		return OutputMode(s), nil
	case "":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output mode: %q (want json, text, or all)", s)
	}
}
