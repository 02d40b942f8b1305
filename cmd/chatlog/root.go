package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatlog",
	Short: "Parse exported chat logs into structured messages",
	Long: `chatlog parses exported chat-log files (WhatsApp-style
"<date>, <time> - <sender>: <message>" lines) into structured records with
word counts and sentiment labels.

Use "chatlog parse" for files or stdin, and "chatlog follow" to monitor a
growing export in real-time.`,
	SilenceUsage: true,
}
