package wizard

import (
	"fmt"
	"strings"
)

// check returns an empty string when v satisfies r, otherwise a message.
type check func(v any, r Rule) string

var checks = map[string]check{
	"required":  checkRequired,
	"min_items": checkMinItems,
	"location":  checkLocation,
	"slots":     checkSlots,
}

func nonBlank(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

func checkRequired(v any, _ Rule) string {
	if !nonBlank(v) {
		return "is required"
	}
	return ""
}

func checkMinItems(v any, r Rule) string {
	min := r.Min
	if min < 1 {
		min = 1
	}
	items, _ := v.([]any)
	n := 0
	for _, it := range items {
		if nonBlank(it) {
			n++
		}
	}
	if n < min {
		return fmt.Sprintf("select at least %d", min)
	}
	return ""
}

func checkLocation(v any, _ Rule) string {
	m, _ := v.(map[string]any)
	var missing []string
	for _, part := range []string{"country", "state", "city"} {
		if !nonBlank(m[part]) {
			missing = append(missing, part)
		}
	}
	if len(missing) > 0 {
		return "missing " + strings.Join(missing, ", ")
	}
	return ""
}

func checkSlots(v any, _ Rule) string {
	items, _ := v.([]any)
	if len(items) == 0 {
		return "add at least one date and time slot"
	}
	for i, it := range items {
		m, _ := it.(map[string]any)
		if !nonBlank(m["date"]) || !nonBlank(m["timeslot"]) {
			return fmt.Sprintf("slot %d needs both a date and a time slot", i+1)
		}
	}
	return ""
}
