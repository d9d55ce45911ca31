package llm

const (
	FallbackMarker   = "[Local fallback summary]"
	fallbackMaxChars = 600
)

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// Fallback is the offline stand-in for a provider: the marker line followed
// by the head of the prompt.
func Fallback(prompt string) string {
	return FallbackMarker + "\n" + truncate(prompt, fallbackMaxChars)
}
