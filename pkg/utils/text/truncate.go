package text

import "fmt"

// Truncate cuts s to at most limit characters and appends suffix when a cut
// happened. The limit is counted in runes, not bytes, since payload text is
// mostly Japanese.
func Truncate(s string, limit int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + suffix
}

// DiffBlock wraps s in a diff-highlighted markdown code block
func DiffBlock(s string) string {
	return fmt.Sprintf("```diff\n%s\n```", s)
}
