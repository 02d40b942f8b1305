package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/chatlog/chatlog-go/pkg/chatlog"
	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// Classifier classifies message text using user-defined sentiment rules.
//
// Rules are checked in file order; the first match wins. Texts matching no
// rule fall back to the built-in trigger sets (funny before love, then
// neutral).
//
// Classifier is safe for concurrent use by multiple goroutines.
type Classifier struct {
	rules []*compiledRule
}

// compiledRule represents a single compiled rule with its metadata.
type compiledRule struct {
	id        string
	sentiment message.Sentiment
	contains  []string // lowercased trigger substrings
	regex     *regexp.Regexp
}

// NewClassifier creates a Classifier from a RuleFile.
// This function compiles all regular expressions and validates their syntax.
// Returns an error if any rule has invalid regex syntax.
//
// Example:
//
//	rf, err := rules.Load("rules.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	classifier, err := rules.NewClassifier(rf)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewClassifier(rf *RuleFile) (*Classifier, error) {
	if rf == nil {
		return nil, fmt.Errorf("rule file is nil")
	}

	compiled := make([]*compiledRule, 0, len(rf.Rules))
	for i, r := range rf.Rules {
		cr := &compiledRule{
			id:        r.ID,
			sentiment: message.Sentiment(r.Sentiment),
		}

		// Triggers match against lowercased text, so lowercase them once here.
		for _, trigger := range r.Contains {
			cr.contains = append(cr.contains, strings.ToLower(trigger))
		}

		if r.Regex != "" {
			re, err := regexp.Compile(r.Regex)
			if err != nil {
				return nil, &RuleError{
					Index:   i,
					ID:      r.ID,
					Field:   "regex",
					Message: fmt.Sprintf("invalid regular expression: %v", err),
					Cause:   err,
				}
			}
			cr.regex = re
		}

		compiled = append(compiled, cr)
	}

	return &Classifier{rules: compiled}, nil
}

// NewClassifierFromFile is a convenience function that loads a rule file
// and creates a Classifier in one step.
//
// Example:
//
//	classifier, err := rules.NewClassifierFromFile("rules.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewClassifierFromFile(path string) (*Classifier, error) {
	rf, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewClassifier(rf)
}

// Classify returns the sentiment label for text.
// The text is lowercased before matching, so triggers and regexes are
// effectively case-insensitive for ASCII input.
func (c *Classifier) Classify(text string) message.Sentiment {
	sentiment, _, _ := c.match(text)
	return sentiment
}

// match runs the rules against text and returns the winning sentiment, the
// named capture groups of the matching regex (nil if none), and whether a
// custom rule matched at all.
func (c *Classifier) match(text string) (message.Sentiment, map[string]string, bool) {
	lower := strings.ToLower(text)

	for _, r := range c.rules {
		for _, trigger := range r.contains {
			if strings.Contains(lower, trigger) {
				return r.sentiment, nil, true
			}
		}
		if r.regex == nil {
			continue
		}
		matches := r.regex.FindStringSubmatch(lower)
		if matches == nil {
			continue
		}

		// Extract named capture groups into a data map.
		// Note: SubexpNames()[0] is always an empty string (the whole match).
		var data map[string]string
		allNames := r.regex.SubexpNames()
		for i := 1; i < len(allNames); i++ {
			if allNames[i] != "" && i < len(matches) {
				if data == nil {
					data = make(map[string]string)
				}
				data[allNames[i]] = matches[i]
			}
		}
		return r.sentiment, data, true
	}

	return chatlog.ClassifyText(text), nil, false
}

// Parser adapts the Classifier into a chatlog.Parser. Lines are parsed with
// the standard delimiter scan; the message sentiment is then re-derived from
// the custom rules, and regex capture groups are placed in Message.Data.
type Parser struct {
	classifier *Classifier
}

// NewParser creates a chatlog.Parser backed by the given Classifier.
func NewParser(c *Classifier) *Parser {
	return &Parser{classifier: c}
}

// ParseLine implements the chatlog.Parser interface.
// The context parameter is for future use (e.g., timeout/cancellation).
func (p *Parser) ParseLine(ctx context.Context, line string) (chatlog.ParseResult, error) {
	msg := chatlog.ParseLine(line)
	if msg == nil {
		return chatlog.ParseResult{Matched: false}, nil
	}

	sentiment, data, matched := p.classifier.match(msg.Text)
	if matched {
		msg.Sentiment = sentiment
		msg.Data = data
	}

	return chatlog.ParseResult{
		Messages: []message.Message{*msg},
		Matched:  true,
	}, nil
}

// Ensure Parser implements chatlog.Parser.
var _ chatlog.Parser = (*Parser)(nil)
