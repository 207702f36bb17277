package handler

import "testing"

func TestFirstURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare link",
			text: "https://open.spotify.com/track/abc",
			want: "https://open.spotify.com/track/abc",
		},
		{
			name: "link inside sentence",
			text: "зацени https://open.spotify.com/track/abc очень годно",
			want: "https://open.spotify.com/track/abc",
		},
		{
			name: "trailing punctuation trimmed",
			text: "смотри: https://open.spotify.com/track/abc!",
			want: "https://open.spotify.com/track/abc",
		},
		{
			name: "closing paren trimmed",
			text: "(https://spotify.link/xyz)",
			want: "https://spotify.link/xyz",
		},
		{
			name: "first of several",
			text: "https://a.example/1 https://b.example/2",
			want: "https://a.example/1",
		},
		{name: "no url", text: "просто текст", want: ""},
		{name: "empty", text: "", want: ""},
		{name: "whitespace only", text: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstURL(tt.text); got != tt.want {
				t.Errorf("firstURL(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		botName string
		want    string
	}{
		{name: "plain command", text: "/help", botName: "SpotInfoBot", want: "help"},
		{name: "command with args", text: "/help me please", botName: "SpotInfoBot", want: "help"},
		{name: "addressed to this bot", text: "/help@SpotInfoBot", botName: "SpotInfoBot", want: "help"},
		{name: "addressed to another bot", text: "/help@OtherBot", botName: "SpotInfoBot", want: ""},
		{name: "unknown bot name still matches", text: "/help@SpotInfoBot", botName: "", want: "help"},
		{name: "not a command", text: "hello", botName: "SpotInfoBot", want: ""},
		{name: "bare slash", text: "/", botName: "SpotInfoBot", want: ""},
		{name: "leading whitespace", text: "  /start", botName: "SpotInfoBot", want: "start"},
		{name: "link is not a command", text: "https://open.spotify.com/track/abc", botName: "SpotInfoBot", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commandName(tt.text, tt.botName); got != tt.want {
				t.Errorf("commandName(%q, %q) = %q, want %q", tt.text, tt.botName, got, tt.want)
			}
		})
	}
}
