package parser

import (
	"strings"

	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// Field delimiters in exported chat lines: "<date>, <time> - <sender>: <message>"
const (
	dateTimeSep = ", "
	senderSep   = " - "
	textSep     = ": "
)

// Trigger substrings for sentiment classification. Matched against the
// lowercased message text.
var (
	funnyTriggers = []string{"😂", ":)", "haha"}
	loveTriggers  = []string{"❤", "love", "pyaar"}
)

// Classify derives the sentiment label for a message text.
//
// The funny triggers are checked first and short-circuit: a text containing
// both a funny and a love trigger is classified as funny.
func Classify(text string) message.Sentiment {
	lower := strings.ToLower(text)

	if containsAny(lower, funnyTriggers) {
		return message.SentimentFunny
	}
	if containsAny(lower, loveTriggers) {
		return message.SentimentLove
	}
	return message.SentimentNeutral
}

func containsAny(s string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
