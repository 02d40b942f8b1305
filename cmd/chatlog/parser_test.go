package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/chatlog/chatlog-go/pkg/chatlog"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildParser_NoRuleFiles(t *testing.T) {
	p, err := buildParser(nil)
	if err != nil {
		t.Fatalf("buildParser() error = %v", err)
	}
	if p != nil {
		t.Errorf("buildParser() = %v, want nil for no rule files", p)
	}
}

func TestBuildParser_WithRules(t *testing.T) {
	path := writeRuleFile(t, `version: 1
rules:
  - id: hype
    sentiment: funny
    contains: ["lmao"]
`)

	p, err := buildParser([]string{path})
	if err != nil {
		t.Fatalf("buildParser() error = %v", err)
	}
	if p == nil {
		t.Fatal("buildParser() = nil, want parser")
	}

	// Custom rule decides the sentiment
	result, err := p.ParseLine(context.Background(), "25/01/2025, 14:30 - Rahul: lmao")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if !result.Matched || len(result.Messages) != 1 {
		t.Fatalf("ParseLine() result = %+v, want one matched message", result)
	}
	if result.Messages[0].Sentiment != chatlog.Sentiment("funny") {
		t.Errorf("Sentiment = %q, want %q", result.Messages[0].Sentiment, "funny")
	}

	// Lines not hitting any rule still parse via the default fallback
	result, err = p.ParseLine(context.Background(), "25/01/2025, 14:30 - Amit: meeting at five")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if !result.Matched {
		t.Error("ParseLine() should match plain export lines")
	}
}

func TestBuildParser_InvalidRuleFile(t *testing.T) {
	path := writeRuleFile(t, `version: 1
rules:
  - id: broken
    sentiment: funny
    regex: '([unclosed'
`)

	_, err := buildParser([]string{path})
	if err == nil {
		t.Fatal("buildParser() expected error for invalid regex")
	}
}

func TestBuildParser_MissingFile(t *testing.T) {
	_, err := buildParser([]string{filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Fatal("buildParser() expected error for missing file")
	}
}
