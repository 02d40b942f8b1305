package chatlog

import "github.com/chatlog/chatlog-go/pkg/chatlog/message"

// Message is an alias for message.Message, re-exported for convenience so
// most callers only need to import this package.
type Message = message.Message

// Sentiment is an alias for message.Sentiment.
type Sentiment = message.Sentiment

// Re-exported sentiment labels.
const (
	SentimentFunny   = message.SentimentFunny
	SentimentLove    = message.SentimentLove
	SentimentNeutral = message.SentimentNeutral
)
