package main

import (
	"fmt"

	"github.com/chatlog/chatlog-go/pkg/chatlog"
	"github.com/chatlog/chatlog-go/pkg/chatlog/rules"
)

// buildParser builds a Parser from rule file paths.
// Returns nil if no rule files are specified (use the default parser).
//
// Rule parsers are chained in ChainFirst mode with the default parser last,
// so the first rule file that recognizes a line decides its sentiment.
func buildParser(ruleFiles []string) (chatlog.Parser, error) {
	if len(ruleFiles) == 0 {
		return nil, nil
	}

	parsers := make([]chatlog.Parser, 0, len(ruleFiles)+1)
	for i, path := range ruleFiles {
		classifier, err := rules.NewClassifierFromFile(path)
		if err != nil {
			// Error from rules package is already sanitized (no path)
			return nil, fmt.Errorf("rule file %d: %w", i+1, err)
		}
		parsers = append(parsers, rules.NewParser(classifier))
	}
	parsers = append(parsers, chatlog.DefaultParser{})

	return &chatlog.ParserChain{
		Mode:    chatlog.ChainFirst,
		Parsers: parsers,
	}, nil
}
