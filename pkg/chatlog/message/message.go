// Package message defines the structured record produced by parsing a
// chat-export line.
package message

// Sentiment is the coarse sentiment label attached to a parsed message.
type Sentiment string

// Built-in sentiment labels.
const (
	SentimentFunny   Sentiment = "funny"
	SentimentLove    Sentiment = "love"
	SentimentNeutral Sentiment = "neutral"
)

// Message is a single parsed chat-export line.
//
// Date and Time are the raw substrings from the export; no calendar or
// clock validation is performed on them.
type Message struct {
	// Date is the text before the first ", " delimiter (e.g. "25/01/2025").
	Date string `json:"date"`

	// Time is the text between the first ", " and the following " - "
	// (e.g. "14:30").
	Time string `json:"time"`

	// Sender is the display name between " - " and ": ".
	Sender string `json:"sender"`

	// Text is the message body with surrounding whitespace removed.
	Text string `json:"text"`

	// WordCount is the number of non-empty space-separated tokens in Text.
	WordCount int `json:"word_count"`

	// Sentiment is the coarse sentiment label derived from Text.
	Sentiment Sentiment `json:"sentiment"`

	// RawLine is the original export line. Only populated when raw line
	// inclusion is requested; empty otherwise.
	RawLine string `json:"raw_line,omitempty"`

	// Data holds named capture groups extracted by custom rules.
	// Nil for messages produced by the default parser.
	Data map[string]string `json:"data,omitempty"`
}
