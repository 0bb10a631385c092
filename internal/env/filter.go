package env

import (
	"slices"
	"strings"
)

// With returns a copy of environ where each key of overrides replaces any
// existing entry of the same name. Overrides are appended in key order.
func With(environ []string, overrides map[string]string) []string {
	result := make([]string, 0, len(environ)+len(overrides))
	for _, e := range environ {
		key, _, _ := strings.Cut(e, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		result = append(result, e)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		result = append(result, k+"="+overrides[k])
	}
	return result
}
