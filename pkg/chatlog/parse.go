package chatlog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chatlog/chatlog-go/internal/parser"
	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// ParseLine parses a single chat-export line into a Message.
//
// Returns nil if the line doesn't match the expected
// "<date>, <time> - <sender>: <message>" shape. There is no error channel:
// any malformed line is simply not a message.
//
// Example:
//
//	line := "25/01/2025, 14:30 - Rahul: Bhai party kab hai? 😂"
//	msg := chatlog.ParseLine(line)
//	if msg != nil {
//	    fmt.Printf("%s said %d words (%s)\n", msg.Sender, msg.WordCount, msg.Sentiment)
//	}
func ParseLine(line string) *message.Message {
	return parser.Parse(line)
}

// ClassifyText derives the built-in sentiment label for a message body.
// Funny triggers take priority over love triggers; anything else is neutral.
func ClassifyText(text string) message.Sentiment {
	return parser.Classify(text)
}

// ParseReader parses all lines from r and returns the recognized messages.
//
// Unrecognized lines are skipped unless WithParseStopOnError is set, in
// which case the first unrecognized non-blank line aborts the parse with
// ErrUnparsableLine. Blank lines never count as failures.
func ParseReader(ctx context.Context, r io.Reader, opts ...ParseOption) ([]message.Message, error) {
	cfg := applyParseOptions(opts)

	scanner := bufio.NewScanner(r)
	if cfg.maxLineBytes > 0 {
		scanner.Buffer(make([]byte, 0, 4096), cfg.maxLineBytes)
	}

	var messages []message.Message
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return messages, err
		}

		line := scanner.Text()
		result, err := cfg.parser.ParseLine(ctx, line)
		if err != nil {
			return messages, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !result.Matched {
			if cfg.stopOnError && !isBlank(line) {
				return messages, fmt.Errorf("line %d: %w", lineNo, ErrUnparsableLine)
			}
			continue
		}

		for _, msg := range result.Messages {
			if !cfg.filter.allows(msg) {
				continue
			}
			if cfg.includeRawLine {
				msg.RawLine = line
			}
			messages = append(messages, msg)
		}
	}
	if err := scanner.Err(); err != nil {
		return messages, fmt.Errorf("reading input: %w", err)
	}

	return messages, nil
}

// ParseFile parses a chat-export file and returns the recognized messages.
// See ParseReader for option semantics.
func ParseFile(ctx context.Context, path string, opts ...ParseOption) ([]message.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export file: %w", err)
	}
	defer f.Close()

	return ParseReader(ctx, f, opts...)
}

func isBlank(line string) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}
