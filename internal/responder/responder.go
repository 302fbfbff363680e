// Package responder is a standalone keyword-matching reply generator. It is
// a library utility only: no HTTP route calls it.
package responder

import (
	"strings"
	"time"
)

const fallback = "I'm not sure about that, but I'm learning every day!"

// Reply matches the input against an ordered list of substring triggers and
// returns the first match's canned answer, or a fallback when nothing
// matches. Time and date answers are computed from the wall clock.
func Reply(input string) string {
	return replyAt(input, time.Now())
}

// replyAt is Reply with an explicit clock so tests stay deterministic.
// Trigger order matters: "your name" must win over a stray "hi" inside it,
// so more specific phrases are tested the way the ordering below lists them.
func replyAt(input string, now time.Time) string {
	input = strings.ToLower(strings.TrimSpace(input))

	switch {
	case strings.Contains(input, "hello") || strings.Contains(input, "hi"):
		return "Hello! How can I help you today?"
	case strings.Contains(input, "your name"):
		return "I'm your friendly chatbot 🤖"
	case strings.Contains(input, "how are you"):
		return "I'm doing great, thanks for asking! How about you?"
	case strings.Contains(input, "time"):
		return "The current time is " + now.Format("15:04:05")
	case strings.Contains(input, "date"):
		return "Today's date is " + now.Format("2006-01-02")
	default:
		return fallback
	}
}
