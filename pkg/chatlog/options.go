package chatlog

import (
	"log/slog"

	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// compiledFilter holds precompiled include/exclude sets for messages.
// Exclude takes precedence over include; an empty include set allows all.
type compiledFilter struct {
	includeSentiments map[message.Sentiment]struct{}
	excludeSentiments map[message.Sentiment]struct{}
	includeSenders    map[string]struct{}
	excludeSenders    map[string]struct{}
}

// allows reports whether msg passes the filter. A nil filter allows all.
func (f *compiledFilter) allows(msg message.Message) bool {
	if f == nil {
		return true
	}
	if _, ok := f.excludeSentiments[msg.Sentiment]; ok {
		return false
	}
	if _, ok := f.excludeSenders[msg.Sender]; ok {
		return false
	}
	if len(f.includeSentiments) > 0 {
		if _, ok := f.includeSentiments[msg.Sentiment]; !ok {
			return false
		}
	}
	if len(f.includeSenders) > 0 {
		if _, ok := f.includeSenders[msg.Sender]; !ok {
			return false
		}
	}
	return true
}

func sentimentSet(sentiments []message.Sentiment) map[message.Sentiment]struct{} {
	set := make(map[message.Sentiment]struct{}, len(sentiments))
	for _, s := range sentiments {
		set[s] = struct{}{}
	}
	return set
}

func senderSet(senders []string) map[string]struct{} {
	set := make(map[string]struct{}, len(senders))
	for _, s := range senders {
		set[s] = struct{}{}
	}
	return set
}

// ParseOption configures ParseReader/ParseFile behavior using the
// functional options pattern.
type ParseOption func(*parseConfig)

// parseConfig holds internal configuration for parsing.
type parseConfig struct {
	filter         *compiledFilter
	includeRawLine bool
	stopOnError    bool
	maxLineBytes   int
	parser         Parser
}

// defaultParseConfig returns a parseConfig with sensible defaults.
func defaultParseConfig() *parseConfig {
	return &parseConfig{
		parser: DefaultParser{},
	}
}

// applyParseOptions applies functional options to a parseConfig.
func applyParseOptions(opts []ParseOption) *parseConfig {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithParseIncludeSentiments keeps only messages with the given sentiments.
// If called multiple times, only the last call takes effect.
func WithParseIncludeSentiments(sentiments ...message.Sentiment) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.includeSentiments = sentimentSet(sentiments)
	}
}

// WithParseExcludeSentiments drops messages with the given sentiments.
// Exclude takes precedence over include.
func WithParseExcludeSentiments(sentiments ...message.Sentiment) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.excludeSentiments = sentimentSet(sentiments)
	}
}

// WithParseIncludeSenders keeps only messages from the given senders.
// Sender names are matched exactly.
func WithParseIncludeSenders(senders ...string) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.includeSenders = senderSet(senders)
	}
}

// WithParseExcludeSenders drops messages from the given senders.
// Exclude takes precedence over include.
func WithParseExcludeSenders(senders ...string) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.excludeSenders = senderSet(senders)
	}
}

// WithParseIncludeRawLine includes the original export line in Message.RawLine.
// Default: false.
func WithParseIncludeRawLine(include bool) ParseOption {
	return func(c *parseConfig) {
		c.includeRawLine = include
	}
}

// WithParseStopOnError aborts on the first non-blank line that doesn't
// parse, instead of skipping it. Default: false.
func WithParseStopOnError(stop bool) ParseOption {
	return func(c *parseConfig) {
		c.stopOnError = stop
	}
}

// WithParseMaxLineBytes sets the maximum size of a single input line.
// 0 uses the bufio.Scanner default (64KB).
func WithParseMaxLineBytes(max int) ParseOption {
	return func(c *parseConfig) {
		c.maxLineBytes = max
	}
}

// WithParseParser sets a custom parser for ParseReader/ParseFile.
// If p is nil, this option has no effect (the default parser remains active).
func WithParseParser(p Parser) ParseOption {
	return func(c *parseConfig) {
		if p != nil {
			c.parser = p
		}
	}
}

// FollowOption configures Follower behavior.
type FollowOption func(*followConfig)

// followConfig holds internal configuration for the follower.
type followConfig struct {
	fromStart      bool
	reopen         bool
	includeRawLine bool
	filter         *compiledFilter
	logger         *slog.Logger
	parser         Parser
}

// defaultFollowConfig returns a followConfig with sensible defaults.
func defaultFollowConfig() *followConfig {
	return &followConfig{
		parser: DefaultParser{},
	}
}

// applyFollowOptions applies functional options to a followConfig.
func applyFollowOptions(opts []FollowOption) *followConfig {
	cfg := defaultFollowConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithFollowFromStart reads the existing file content before waiting for
// new lines. Default: start at the end of the file (tail -f behavior).
func WithFollowFromStart() FollowOption {
	return func(c *followConfig) {
		c.fromStart = true
	}
}

// WithFollowReopen re-opens the file when it is rotated or recreated.
// Default: false.
func WithFollowReopen(reopen bool) FollowOption {
	return func(c *followConfig) {
		c.reopen = reopen
	}
}

// WithFollowIncludeRawLine includes the original export line in Message.RawLine.
// Default: false.
func WithFollowIncludeRawLine(include bool) FollowOption {
	return func(c *followConfig) {
		c.includeRawLine = include
	}
}

// WithFollowIncludeSentiments keeps only messages with the given sentiments.
func WithFollowIncludeSentiments(sentiments ...message.Sentiment) FollowOption {
	return func(c *followConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.includeSentiments = sentimentSet(sentiments)
	}
}

// WithFollowIncludeSenders keeps only messages from the given senders.
func WithFollowIncludeSenders(senders ...string) FollowOption {
	return func(c *followConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.includeSenders = senderSet(senders)
	}
}

// WithFollowLogger sets a custom logger for debug output.
// If logger is nil, logging is disabled (default behavior).
func WithFollowLogger(logger *slog.Logger) FollowOption {
	return func(c *followConfig) {
		c.logger = logger
	}
}

// WithFollowParser sets a custom parser for followed lines.
// If p is nil, this option has no effect (the default parser remains active).
func WithFollowParser(p Parser) FollowOption {
	return func(c *followConfig) {
		if p != nil {
			c.parser = p
		}
	}
}
