package utils

// ClampLimit returns def for non-positive limits and caps the rest at max
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
