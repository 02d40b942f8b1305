// Package rules provides custom sentiment classification for chat exports.
// It allows users to define their own sentiment triggers via YAML
// configuration files with substring and regular expression matching.
package rules

// RuleFile represents the structure of a YAML rule file.
// Rule files let users extend or override the built-in sentiment triggers
// without writing code. Rules are evaluated in file order; the first match
// wins, and texts matching no rule fall back to the built-in triggers.
//
// Example YAML file:
//
//	version: 1
//	rules:
//	  - id: hype
//	    sentiment: funny
//	    contains: ["lmao", "rofl"]
//	  - id: gratitude
//	    sentiment: love
//	    regex: 'thank (?P<target>\w+)'
type RuleFile struct {
	// Version is the rule file format version. Currently only version 1 is supported.
	Version int `yaml:"version"`

	// Rules is the list of rule definitions.
	Rules []Rule `yaml:"rules"`
}

// Rule represents a single sentiment rule.
// A rule matches when any entry of Contains appears in the lowercased
// message text, or when Regex matches it. At least one of Contains and
// Regex must be set. Regexes may contain named capture groups
// (?P<name>...) which are extracted into the Message.Data field when the
// rule is used through a Parser.
type Rule struct {
	// ID is a unique identifier for this rule (e.g. "gratitude").
	// IDs must be unique within a rule file.
	ID string `yaml:"id"`

	// Sentiment is the label to assign when this rule matches.
	// Any non-empty label is allowed, not just the built-in three.
	Sentiment string `yaml:"sentiment"`

	// Contains lists trigger substrings, matched case-insensitively.
	Contains []string `yaml:"contains,omitempty"`

	// Regex is an optional regular expression matched against the
	// lowercased message text.
	Regex string `yaml:"regex,omitempty"`
}
