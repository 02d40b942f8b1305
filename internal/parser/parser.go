// Package parser provides chat-export line parsing functionality.
package parser

import (
	"strings"

	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// Parse parses one exported chat line into a Message.
//
// The expected shape is "<date>, <time> - <sender>: <message>". Each field
// is extracted by first-occurrence delimiter scanning; if any delimiter is
// missing, or any extracted field ends up empty, the whole parse fails.
//
// Returns:
//   - (*Message): Successfully parsed
//   - (nil): Not a recognized chat-export line
func Parse(line string) *message.Message {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	date, ok := extractDate(line)
	if !ok {
		return nil
	}
	tm, ok := extractTime(line)
	if !ok {
		return nil
	}
	sender, ok := extractSender(line)
	if !ok {
		return nil
	}
	text, ok := extractText(line)
	if !ok {
		return nil
	}

	// All fields must be non-empty; a partial extraction is discarded.
	if date == "" || tm == "" || sender == "" || text == "" {
		return nil
	}

	return &message.Message{
		Date:      date,
		Time:      tm,
		Sender:    sender,
		Text:      text,
		WordCount: WordCount(text),
		Sentiment: Classify(text),
	}
}

// extractDate returns the substring before the first ", ".
func extractDate(line string) (string, bool) {
	i := strings.Index(line, dateTimeSep)
	if i < 0 {
		return "", false
	}
	return line[:i], true
}

// extractTime returns the substring between the first ", " and the first
// " - " that follows it.
func extractTime(line string) (string, bool) {
	i := strings.Index(line, dateTimeSep)
	if i < 0 {
		return "", false
	}
	start := i + len(dateTimeSep)
	j := strings.Index(line[start:], senderSep)
	if j < 0 {
		return "", false
	}
	return line[start : start+j], true
}

// extractSender returns the substring between the first " - " in the whole
// line and the first ": " at or after it.
func extractSender(line string) (string, bool) {
	dash := strings.Index(line, senderSep)
	if dash < 0 {
		return "", false
	}
	colon := strings.Index(line[dash:], textSep)
	if colon < 0 {
		return "", false
	}
	return line[dash+len(senderSep) : dash+colon], true
}

// extractText returns the trimmed substring after the first ": " in the
// whole line. The search deliberately starts at position 0 rather than at
// the sender delimiter; this preserves the historical export-format
// behavior, which downstream consumers depend on.
func extractText(line string) (string, bool) {
	colon := strings.Index(line, textSep)
	if colon < 0 {
		return "", false
	}
	return strings.TrimSpace(line[colon+len(textSep):]), true
}

// WordCount counts the non-empty tokens produced by splitting text on the
// single space character. Consecutive spaces collapse, but tabs and other
// whitespace are not treated as separators.
func WordCount(text string) int {
	n := 0
	for _, tok := range strings.Split(text, " ") {
		if tok != "" {
			n++
		}
	}
	return n
}
