package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chatlog/chatlog-go/internal/exportfinder"
	"github.com/chatlog/chatlog-go/pkg/chatlog"
	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

var (
	// follow flags
	followDir        string
	followFormat     string
	followRuleFiles  []string
	followRaw        bool
	followSenders    []string
	followSentiments []string
	followFromStart  bool
	followReopen     bool
)

var followCmd = &cobra.Command{
	Use:   "follow [file]",
	Short: "Monitor a chat export and output messages as they arrive",
	Long: `Monitor a chat-export file in real-time and output parsed messages.

When no file is given, the newest .txt export in the directory from
--dir (or the CHATLOG_DIR environment variable) is followed.

Examples:
  # Follow an export file
  chatlog follow "WhatsApp Chat with Rahul.txt"

  # Auto-discover the newest export
  CHATLOG_DIR=~/exports chatlog follow

  # Replay the whole file first, human-readable
  chatlog follow chat.txt --from-start --format pretty

  # Pipe to jq for filtering
  chatlog follow chat.txt | jq 'select(.sentiment == "funny")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFollow,
}

func init() {
	followCmd.Flags().StringVarP(&followDir, "dir", "d", "",
		"Export directory to search when no file is given")
	followCmd.Flags().StringVarP(&followFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	followCmd.Flags().StringArrayVar(&followRuleFiles, "rules", nil,
		"YAML sentiment rule file (can be repeated)")
	followCmd.Flags().BoolVar(&followRaw, "raw", false,
		"Include raw export lines in output")
	followCmd.Flags().StringSliceVar(&followSenders, "senders", nil,
		"Senders to include (comma-separated)")
	followCmd.Flags().StringSliceVar(&followSentiments, "sentiments", nil,
		"Sentiments to include (comma-separated: funny,love,neutral)")
	followCmd.Flags().BoolVar(&followFromStart, "from-start", false,
		"Read existing file content before waiting for new lines")
	followCmd.Flags().BoolVar(&followReopen, "reopen", false,
		"Re-open the file when it is rotated or recreated")

	rootCmd.AddCommand(followCmd)
}

func runFollow(cmd *cobra.Command, args []string) error {
	if !ValidFormats[followFormat] {
		return fmt.Errorf("invalid format: %s (valid: jsonl, pretty)", followFormat)
	}

	path, err := resolveFollowPath(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := buildFollowOptions()
	if err != nil {
		return err
	}

	follower := chatlog.NewFollower(path, opts...)
	defer follower.Close()

	msgs, errs, err := follower.Follow(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := OutputMessage(followFormat, msg, out); err != nil {
				return err
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "error: %v\n", err)
		case <-ctx.Done():
			return nil
		}
	}
}

// resolveFollowPath picks the file to follow: the explicit argument, or the
// newest export in the configured directory.
func resolveFollowPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	dir, err := exportfinder.FindExportDir(followDir)
	if err != nil {
		return "", err
	}
	return exportfinder.FindLatestExport(dir)
}

func buildFollowOptions() ([]chatlog.FollowOption, error) {
	parser, err := buildParser(followRuleFiles)
	if err != nil {
		return nil, err
	}

	opts := []chatlog.FollowOption{
		chatlog.WithFollowIncludeRawLine(followRaw),
		chatlog.WithFollowReopen(followReopen),
	}
	if followFromStart {
		opts = append(opts, chatlog.WithFollowFromStart())
	}
	if parser != nil {
		opts = append(opts, chatlog.WithFollowParser(parser))
	}
	if len(followSenders) > 0 {
		opts = append(opts, chatlog.WithFollowIncludeSenders(followSenders...))
	}
	if len(followSentiments) > 0 {
		sentiments := make([]message.Sentiment, 0, len(followSentiments))
		for _, s := range followSentiments {
			sentiments = append(sentiments, message.Sentiment(s))
		}
		opts = append(opts, chatlog.WithFollowIncludeSentiments(sentiments...))
	}
	return opts, nil
}
