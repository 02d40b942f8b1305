package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chatlog/chatlog-go/pkg/chatlog"
	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

var (
	// parse flags
	parseFormat     string
	parseRuleFiles  []string
	parseRaw        bool
	parseSenders    []string
	parseSentiments []string
	parseStrict     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse chat exports and output structured messages",
	Long: `Parse exported chat files (or stdin when no files are given) and
output structured messages.

Messages are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq.

Examples:
  # Parse an export file
  chatlog parse "WhatsApp Chat with Rahul.txt"

  # Parse from stdin
  cat chat.txt | chatlog parse

  # Only love messages, human-readable
  chatlog parse chat.txt --sentiments love --format pretty

  # Custom sentiment rules
  chatlog parse chat.txt --rules rules.yaml

  # Pipe to jq for analytics
  chatlog parse chat.txt | jq -s 'group_by(.sender) | map({sender: .[0].sender, n: length})'`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	parseCmd.Flags().StringArrayVar(&parseRuleFiles, "rules", nil,
		"YAML sentiment rule file (can be repeated)")
	parseCmd.Flags().BoolVar(&parseRaw, "raw", false,
		"Include raw export lines in output")
	parseCmd.Flags().StringSliceVar(&parseSenders, "senders", nil,
		"Senders to include (comma-separated)")
	parseCmd.Flags().StringSliceVar(&parseSentiments, "sentiments", nil,
		"Sentiments to include (comma-separated: funny,love,neutral)")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false,
		"Fail on the first line that doesn't match the export format")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if !ValidFormats[parseFormat] {
		return fmt.Errorf("invalid format: %s (valid: jsonl, pretty)", parseFormat)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := buildParseOptions()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return parseStream(ctx, cmd.InOrStdin(), out, opts)
	}
	for _, path := range args {
		if err := parsePath(ctx, path, out, opts); err != nil {
			return err
		}
	}
	return nil
}

func buildParseOptions() ([]chatlog.ParseOption, error) {
	parser, err := buildParser(parseRuleFiles)
	if err != nil {
		return nil, err
	}

	opts := []chatlog.ParseOption{
		chatlog.WithParseIncludeRawLine(parseRaw),
		chatlog.WithParseStopOnError(parseStrict),
	}
	if parser != nil {
		opts = append(opts, chatlog.WithParseParser(parser))
	}
	if len(parseSenders) > 0 {
		opts = append(opts, chatlog.WithParseIncludeSenders(parseSenders...))
	}
	if len(parseSentiments) > 0 {
		sentiments := make([]message.Sentiment, 0, len(parseSentiments))
		for _, s := range parseSentiments {
			sentiments = append(sentiments, message.Sentiment(s))
		}
		opts = append(opts, chatlog.WithParseIncludeSentiments(sentiments...))
	}
	return opts, nil
}

func parseStream(ctx context.Context, in io.Reader, out io.Writer, opts []chatlog.ParseOption) error {
	msgs, err := chatlog.ParseReader(ctx, in, opts...)
	if err != nil {
		return err
	}
	return outputMessages(msgs, out)
}

func parsePath(ctx context.Context, path string, out io.Writer, opts []chatlog.ParseOption) error {
	msgs, err := chatlog.ParseFile(ctx, path, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return outputMessages(msgs, out)
}

func outputMessages(msgs []chatlog.Message, out io.Writer) error {
	for _, msg := range msgs {
		if err := OutputMessage(parseFormat, msg, out); err != nil {
			return err
		}
	}
	return nil
}
