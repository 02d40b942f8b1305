package chatlog

import (
	"context"

	"github.com/chatlog/chatlog-go/internal/parser"
	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// DefaultParser wraps the built-in delimiter-scan parser for standard
// "<date>, <time> - <sender>: <message>" export lines.
type DefaultParser struct{}

// ParseLine implements the Parser interface.
// The context parameter is for future use (e.g., timeout/cancellation).
func (DefaultParser) ParseLine(ctx context.Context, line string) (ParseResult, error) {
	msg := parser.Parse(line)
	if msg == nil {
		return ParseResult{Matched: false}, nil
	}
	return ParseResult{Messages: []message.Message{*msg}, Matched: true}, nil
}

// Ensure DefaultParser implements Parser.
var _ Parser = DefaultParser{}
