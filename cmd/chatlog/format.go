package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chatlog/chatlog-go/pkg/chatlog"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputMessage writes a message in the specified format to the writer.
func OutputMessage(format string, msg chatlog.Message, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(msg, out)
	case "pretty":
		return OutputPretty(msg, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes a message as JSON Lines format.
func OutputJSON(msg chatlog.Message, out io.Writer) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes a message in human-readable format.
func OutputPretty(msg chatlog.Message, out io.Writer) error {
	var err error
	if len(msg.Data) > 0 {
		_, err = fmt.Fprintf(out, "[%s %s] %s (%s, %d words): %s %s\n",
			msg.Date, msg.Time, msg.Sender, msg.Sentiment, msg.WordCount, msg.Text, formatData(msg.Data))
	} else {
		_, err = fmt.Fprintf(out, "[%s %s] %s (%s, %d words): %s\n",
			msg.Date, msg.Time, msg.Sender, msg.Sentiment, msg.WordCount, msg.Text)
	}
	return err
}

// formatData formats a map as sorted key=value pairs.
// Values are quoted if they contain spaces, equals signs, quotes, or control characters.
func formatData(data map[string]string) string {
	if len(data) == 0 {
		return ""
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(data))
	for _, k := range keys {
		v := data[k]
		parts = append(parts, fmt.Sprintf("%s=%s", quoteIfNeeded(k), quoteIfNeeded(v)))
	}
	return strings.Join(parts, " ")
}

// quoteIfNeeded quotes a value if it contains special characters or control characters.
// Returns the value unchanged if no quoting is needed.
func quoteIfNeeded(v string) string {
	if v == "" {
		return `""`
	}

	// Check for characters that require quoting
	needsQuote := false
	for _, c := range v {
		// Quote if: space, equals, quote, backslash, or any control character (< 0x20 or DEL 0x7F)
		if c == ' ' || c == '=' || c == '"' || c == '\\' || c < 0x20 || c == 0x7F {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return v
	}

	// Escape special characters
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range v {
		switch {
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c < 0x20 || c == 0x7F:
			// Other control characters (including DEL): escape as \xNN
			sb.WriteString(fmt.Sprintf(`\x%02x`, c))
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
