package parser

import (
	"testing"

	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *message.Message
	}{
		{
			name:  "funny message with emoji",
			input: "25/01/2025, 14:30 - Rahul: Bhai party kab hai? 😂",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Rahul",
				Text:      "Bhai party kab hai? 😂",
				WordCount: 5,
				Sentiment: message.SentimentFunny,
			},
		},
		{
			name:  "love message",
			input: "01/12/2024, 09:15 - Priya: I love this song",
			want: &message.Message{
				Date:      "01/12/2024",
				Time:      "09:15",
				Sender:    "Priya",
				Text:      "I love this song",
				WordCount: 4,
				Sentiment: message.SentimentLove,
			},
		},
		{
			name:  "neutral message",
			input: "25/01/2025, 14:30 - Amit: Meeting at five",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Amit",
				Text:      "Meeting at five",
				WordCount: 3,
				Sentiment: message.SentimentNeutral,
			},
		},
		{
			name:  "sender with spaces",
			input: "25/01/2025, 14:30 - Rahul Kumar: ok",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Rahul Kumar",
				Text:      "ok",
				WordCount: 1,
				Sentiment: message.SentimentNeutral,
			},
		},
		{
			name:  "body whitespace trimmed",
			input: "25/01/2025, 14:30 - Amit:   spaced out   ",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Amit",
				Text:      "spaced out",
				WordCount: 2,
				Sentiment: message.SentimentNeutral,
			},
		},
		{
			name:  "consecutive spaces collapse in word count",
			input: "25/01/2025, 14:30 - Amit: one  two   three",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Amit",
				Text:      "one  two   three",
				WordCount: 3,
				Sentiment: message.SentimentNeutral,
			},
		},
		{
			name:  "tab is not a word separator",
			input: "25/01/2025, 14:30 - Amit: one\ttwo three",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Amit",
				Text:      "one\ttwo three",
				WordCount: 2,
				Sentiment: message.SentimentNeutral,
			},
		},
		{
			name:  "colon in body keeps first-occurrence boundary",
			input: "25/01/2025, 14:30 - Sam: score: 3-1",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Sam",
				Text:      "score: 3-1",
				WordCount: 2,
				Sentiment: message.SentimentNeutral,
			},
		},

		// Failure cases (should return nil)
		{
			name:  "not a chat line",
			input: "not a valid whatsapp line",
			want:  nil,
		},
		{
			name:  "missing colon after sender",
			input: "25/01/2025, 14:30 - Rahul Hello",
			want:  nil,
		},
		{
			name:  "body is only whitespace",
			input: "25/01/2025, 14:30 - Amit:    ",
			want:  nil,
		},
		{
			name:  "missing time dash",
			input: "25/01/2025, 14:30 Rahul: Hello",
			want:  nil,
		},
		{
			name:  "missing date comma",
			input: "25/01/2025 14:30 - Rahul: Hello",
			want:  nil,
		},
		{
			name:  "empty date",
			input: ", 14:30 - Rahul: Hello",
			want:  nil,
		},
		{
			name:  "empty sender",
			input: "25/01/2025, 14:30 - : Hello",
			want:  nil,
		},
		{
			name:  "empty line",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace-only line",
			input: "   \t  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !messageEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The message body is extracted after the first ": " in the whole line, not
// after the sender delimiter. A sender-like prefix containing ": " before
// the real " - " shifts the body boundary; that behavior is intentional and
// must not change.
func TestParse_TextSearchesFromStart(t *testing.T) {
	got := Parse("note: 25/01/2025, 14:30 - Rahul: Hello")
	if got == nil {
		t.Fatal("Parse() = nil, want message")
	}
	if got.Text != "25/01/2025, 14:30 - Rahul: Hello" {
		t.Errorf("Text = %q, want body after the first %q", got.Text, ": ")
	}
	if got.Sender != "Rahul" {
		t.Errorf("Sender = %q, want %q", got.Sender, "Rahul")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want message.Sentiment
	}{
		{"laughing emoji", "see you there 😂", message.SentimentFunny},
		{"smiley", "nice one :)", message.SentimentFunny},
		{"haha", "haha good one", message.SentimentFunny},
		{"haha uppercase", "HAHA GOOD ONE", message.SentimentFunny},
		{"heart emoji", "miss you ❤", message.SentimentLove},
		{"love", "I love this song", message.SentimentLove},
		{"love uppercase", "LOVE IT", message.SentimentLove},
		{"pyaar", "bahut pyaar", message.SentimentLove},
		{"neutral", "meeting at five", message.SentimentNeutral},
		{"funny wins over love", "Okay :) love it", message.SentimentFunny},
		{"funny wins over heart", "haha ❤", message.SentimentFunny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single word", "hello", 1},
		{"several words", "Bhai party kab hai? 😂", 5},
		{"consecutive spaces", "a  b   c", 3},
		{"tab not a separator", "a\tb c", 2},
		{"newline not a separator", "a\nb c", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_Parallel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *message.Message
	}{
		{
			name:  "funny",
			input: "25/01/2025, 14:30 - Sam: Okay :) love it",
			want: &message.Message{
				Date:      "25/01/2025",
				Time:      "14:30",
				Sender:    "Sam",
				Text:      "Okay :) love it",
				WordCount: 4,
				Sentiment: message.SentimentFunny,
			},
		},
		{
			name:  "love",
			input: "01/12/2024, 09:15 - Priya: I love this song",
			want: &message.Message{
				Date:      "01/12/2024",
				Time:      "09:15",
				Sender:    "Priya",
				Text:      "I love this song",
				WordCount: 4,
				Sentiment: message.SentimentLove,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.input)
			if !messageEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func FuzzParse(f *testing.F) {
	// Seed corpus
	f.Add("25/01/2025, 14:30 - Rahul: Bhai party kab hai? 😂")
	f.Add("01/12/2024, 09:15 - Priya: I love this song")
	f.Add("not a valid whatsapp line")
	f.Add("25/01/2025, 14:30 - Rahul Hello")
	f.Add(", 14:30 - : ")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		got := Parse(line)
		if got == nil {
			return
		}
		// A non-nil result always has fully populated string fields.
		if got.Date == "" || got.Time == "" || got.Sender == "" || got.Text == "" {
			t.Errorf("Parse(%q) returned partially empty message: %+v", line, got)
		}
		if got.WordCount != WordCount(got.Text) {
			t.Errorf("Parse(%q) WordCount = %d, want %d", line, got.WordCount, WordCount(got.Text))
		}
		if got.Sentiment != Classify(got.Text) {
			t.Errorf("Parse(%q) Sentiment = %q, want %q", line, got.Sentiment, Classify(got.Text))
		}
	})
}

// Helper functions

func messageEqual(a, b *message.Message) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Date == b.Date &&
		a.Time == b.Time &&
		a.Sender == b.Sender &&
		a.Text == b.Text &&
		a.WordCount == b.WordCount &&
		a.Sentiment == b.Sentiment
}
