// Package chatlog provides parsing of exported chat-log files.
//
// This package allows you to:
//   - Parse exported chat lines into structured messages
//   - Derive word counts and coarse sentiment labels per message
//   - Follow a growing export file in real-time
//   - Define custom sentiment rules via YAML configuration
//   - Build tools like chat analytics, dashboards, archivers, etc.
//
// # Basic Usage
//
// To parse a single export line:
//
//	msg := chatlog.ParseLine("25/01/2025, 14:30 - Rahul: Bhai party kab hai? 😂")
//	if msg == nil {
//	    // line doesn't match the export format
//	    return
//	}
//	fmt.Printf("%s: %q (%d words, %s)\n", msg.Sender, msg.Text, msg.WordCount, msg.Sentiment)
//
// A nil result means the line did not match the expected
// "<date>, <time> - <sender>: <message>" shape; the caller decides whether
// to skip or flag it. There is no partial result and no error to inspect.
//
// To parse a whole export file:
//
//	messages, err := chatlog.ParseFile(ctx, "chat.txt",
//	    chatlog.WithParseIncludeSentiments(chatlog.SentimentFunny),
//	)
//
// To follow an export file as it grows:
//
//	follower := chatlog.NewFollower("chat.txt", chatlog.WithFollowFromStart())
//	defer follower.Close()
//
//	messages, errs, err := follower.Follow(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for {
//	    select {
//	    case msg, ok := <-messages:
//	        if !ok {
//	            return
//	        }
//	        fmt.Printf("%s: %s\n", msg.Sender, msg.Text)
//	    case err, ok := <-errs:
//	        if !ok {
//	            return
//	        }
//	        log.Printf("error: %v", err)
//	    }
//	}
//
// # Custom Parsers
//
// Implement the [Parser] interface for custom line parsing:
//
//	type Parser interface {
//	    ParseLine(ctx context.Context, line string) (ParseResult, error)
//	}
//
// Use [ParserChain] to combine multiple parsers:
//
//	chain := &chatlog.ParserChain{
//	    Mode:    chatlog.ChainFirst,
//	    Parsers: []chatlog.Parser{customParser, chatlog.DefaultParser{}},
//	}
//
// # YAML Sentiment Rules
//
// For custom sentiment triggers without code, use the [rules] subpackage:
//
//	import "github.com/chatlog/chatlog-go/pkg/chatlog/rules"
//
//	classifier, err := rules.NewClassifierFromFile("rules.yaml")
//
// See the [rules] package for details on the YAML format and usage.
package chatlog
