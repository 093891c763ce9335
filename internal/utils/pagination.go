// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// ParseIntParam converts an optional query parameter to an int. An empty
// string yields the default; a non-integer string yields ok=false so callers
// can reject the request rather than silently substituting a value.
func ParseIntParam(s string, def int) (n int, ok bool) {
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// PageCount returns the number of pages needed to hold total items at the
// given page size: ceil(total/limit), 0 when total is 0.
func PageCount(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
