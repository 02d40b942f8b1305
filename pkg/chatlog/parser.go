package chatlog

import (
	"context"
	"errors"

	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// ParseResult represents the result of parsing a chat-export line.
type ParseResult struct {
	// Messages contains the parsed messages.
	Messages []message.Message

	// Matched indicates whether the parser matched the input.
	// This can be true even if Messages is empty (e.g., a filter that matches but outputs nothing).
	Matched bool
}

// Parser is the interface for chat-export line parsers.
// Implementations include DefaultParser (standard export lines) and
// rule-driven parsers built from YAML sentiment rules.
type Parser interface {
	// ParseLine parses a single export line.
	// Returns ParseResult with Matched=true if the line was recognized.
	// Returns error only for unexpected failures (not for unrecognized lines).
	ParseLine(ctx context.Context, line string) (ParseResult, error)
}

// ParserFunc is an adapter to allow ordinary functions to be used as Parsers.
type ParserFunc func(ctx context.Context, line string) (ParseResult, error)

// ParseLine implements the Parser interface.
func (f ParserFunc) ParseLine(ctx context.Context, line string) (ParseResult, error) {
	return f(ctx, line)
}

// ChainMode specifies how ParserChain executes parsers.
type ChainMode int

const (
	// ChainAll executes all parsers and combines results (default).
	ChainAll ChainMode = iota

	// ChainFirst stops at the first parser that matches.
	ChainFirst

	// ChainContinueOnError skips parsers that return errors and continues.
	// Errors are collected and returned together at the end.
	ChainContinueOnError
)

// ParserChain combines multiple parsers.
type ParserChain struct {
	Mode    ChainMode
	Parsers []Parser
}

// ParseLine implements the Parser interface.
//
// Context Cancellation:
// If the context is cancelled during execution, ParseLine returns immediately
// with partial results (messages collected before cancellation) and the
// context error. Callers should typically discard partial results when
// err != nil, but the partial data is provided for debugging purposes.
func (c *ParserChain) ParseLine(ctx context.Context, line string) (ParseResult, error) {
	var allMessages []message.Message
	var errs []error
	anyMatched := false

	for _, p := range c.Parsers {
		// Check for context cancellation
		if err := ctx.Err(); err != nil {
			return ParseResult{Messages: allMessages, Matched: anyMatched}, err
		}

		// Skip nil parsers
		if p == nil {
			continue
		}

		result, err := p.ParseLine(ctx, line)
		if err != nil {
			if c.Mode == ChainContinueOnError {
				errs = append(errs, err)
				continue
			}
			return ParseResult{}, err
		}
		if result.Matched {
			anyMatched = true
			allMessages = append(allMessages, result.Messages...)
			if c.Mode == ChainFirst {
				return ParseResult{Messages: allMessages, Matched: true}, nil
			}
		}
	}

	// ChainContinueOnError: return collected errors at the end
	if len(errs) > 0 {
		return ParseResult{Messages: allMessages, Matched: anyMatched}, errors.Join(errs...)
	}

	return ParseResult{Messages: allMessages, Matched: anyMatched}, nil
}
