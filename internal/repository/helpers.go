package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeLayout = time.RFC3339

// encodePrograms serializes a program list for the features.programs
// column. nil and empty both store as "[]".
func encodePrograms(programs []string) (string, error) {
	if len(programs) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(programs)
	if err != nil {
		return "", fmt.Errorf("encoding programs: %w", err)
	}
	return string(b), nil
}

func decodePrograms(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var programs []string
	if err := json.Unmarshal([]byte(raw), &programs); err != nil {
		return nil, fmt.Errorf("decoding programs: %w", err)
	}
	return programs, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
