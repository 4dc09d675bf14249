package policy

import (
	"strconv"
	"strings"
)

// ParseEvaluation parses a shortlisting narrative of newline-separated
// "Key: value" lines plus one line beginning "Recommendation". Values that
// parse as numbers are stored as float64, everything else as the trimmed
// string. The recommendation line is excluded from the score map.
func ParseEvaluation(narrative string) (map[string]interface{}, string) {
	scores := make(map[string]interface{})
	recommendation := ""

	for _, line := range strings.Split(narrative, "\n") {
		if strings.HasPrefix(line, "Recommendation") {
			if idx := strings.Index(line, ":"); idx >= 0 {
				recommendation = strings.TrimSpace(line[idx+1:])
			}
			continue
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" {
			continue
		}

		if number, err := strconv.ParseFloat(value, 64); err == nil {
			scores[key] = number
		} else {
			scores[key] = value
		}
	}

	return scores, recommendation
}

// OverallScore averages the numeric values in a parsed score map. A map with
// no numeric values scores 0 rather than dividing by zero.
func OverallScore(scores map[string]interface{}) float64 {
	total := 0.0
	count := 0

	for _, value := range scores {
		if number, ok := value.(float64); ok {
			total += number
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}
