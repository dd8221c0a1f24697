// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"os"
	"strconv"
)

// resolver yields one candidate configuration value and reports whether it
// is set. Resolution is an ordered chain evaluated until a resolver yields,
// falling back to a hardcoded default.
type resolver func() (string, bool)

// resolveString evaluates the chain in order and returns the first value
// present, or fallback when none is.
func resolveString(fallback string, chain ...resolver) string {
	for _, r := range chain {
		if v, ok := r(); ok {
			return v
		}
	}
	return fallback
}

// resolveFloat is resolveString for float-valued settings; unparsable
// candidates are skipped rather than treated as zero.
func resolveFloat(fallback float64, chain ...resolver) float64 {
	for _, r := range chain {
		v, ok := r()
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		return f
	}
	return fallback
}

func fromValue(v string) resolver {
	return func() (string, bool) { return v, v != "" }
}

func fromFloat(v *float64) resolver {
	return func() (string, bool) {
		if v == nil {
			return "", false
		}
		return strconv.FormatFloat(*v, 'f', -1, 64), true
	}
}

func fromMap(m map[string]string, key string) resolver {
	return func() (string, bool) {
		v, ok := m[key]
		return v, ok && v != ""
	}
}

func fromEnv(key string) resolver {
	return func() (string, bool) {
		v := os.Getenv(key)
		return v, v != ""
	}
}
