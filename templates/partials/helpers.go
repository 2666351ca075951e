package partials

// classIf returns base, plus extra when cond holds
func classIf(base string, cond bool, extra string) string {
	if !cond {
		return base
	}
	return base + " " + extra
}
