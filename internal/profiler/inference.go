package profiler

import (
	"strconv"
	"time"

	"dataprobe/internal/dataset"
)

// InferKind decides a column kind from its string values. Formats that carry
// no type information (CSV, spreadsheets) run every column through this;
// decoders with a real schema never do.
func InferKind(c *dataset.Column) dataset.Kind {
	kind := dataset.Kind("")
	for i, v := range c.Values {
		if !c.Valid[i] {
			continue
		}
		kind = widen(kind, inferValue(v))
		if kind == dataset.KindString {
			break
		}
	}
	if kind == "" {
		// all-missing columns read back as object dtype
		return dataset.KindString
	}
	return kind
}

func inferValue(value string) dataset.Kind {
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return dataset.KindInt
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return dataset.KindFloat
	}
	if _, err := strconv.ParseBool(value); err == nil {
		return dataset.KindBool
	}
	if isDate(value) {
		return dataset.KindDate
	}
	return dataset.KindString
}

// widen merges the kind seen so far with the kind of the next value. Mixed
// int/float stays numeric; anything else mixed collapses to string.
func widen(acc, next dataset.Kind) dataset.Kind {
	switch {
	case acc == "" || acc == next:
		return next
	case acc == dataset.KindInt && next == dataset.KindFloat,
		acc == dataset.KindFloat && next == dataset.KindInt:
		return dataset.KindFloat
	default:
		return dataset.KindString
	}
}

func isDate(value string) bool {
	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"02-Jan-2006",
	}

	for _, format := range formats {
		_, err := time.Parse(format, value)
		if err == nil {
			return true
		}
	}

	return false
}
