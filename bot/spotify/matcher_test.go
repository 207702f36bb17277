package spotify

import (
	"testing"
)

func TestExtractTrackID(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantID string
		wantOK bool
	}{
		{
			name:   "full link",
			text:   "https://open.spotify.com/track/5KawlOMHjWeUjQtnuRs22c",
			wantID: "5KawlOMHjWeUjQtnuRs22c",
			wantOK: true,
		},
		{
			name:   "link with query",
			text:   "https://open.spotify.com/track/5KawlOMHjWeUjQtnuRs22c?si=abc_def",
			wantID: "5KawlOMHjWeUjQtnuRs22c",
			wantOK: true,
		},
		{
			name:   "surrounded by text",
			text:   "смотри что нашел https://open.spotify.com/track/0VjIjW4GlUZAMYd2vXMi3b круто же",
			wantID: "0VjIjW4GlUZAMYd2vXMi3b",
			wantOK: true,
		},
		{
			name:   "bare segment",
			text:   "track/abc123",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "no track segment",
			text:   "https://open.spotify.com/album/4aawyAB9vmqN3uQ7FjRGTy",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "empty string",
			text:   "",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "plain text",
			text:   "просто текст без ссылок",
			wantID: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTrackID(tt.text)
			if got != tt.wantID || ok != tt.wantOK {
				t.Errorf("ExtractTrackID(%q) = (%q,%v), want (%q,%v)", tt.text, got, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestExtractPlaylistID(t *testing.T) {
	id, ok := ExtractPlaylistID("https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M")
	if !ok || id != "37i9dQZF1DXcBWIGoYBM5M" {
		t.Fatalf("ExtractPlaylistID = (%q,%v)", id, ok)
	}
	if _, ok := ExtractPlaylistID("https://open.spotify.com/track/abc"); ok {
		t.Fatal("track link must not match playlist pattern")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind InputKind
		wantID   string
	}{
		{
			name:     "track link",
			text:     "https://open.spotify.com/track/5KawlOMHjWeUjQtnuRs22c",
			wantKind: InputTrack,
			wantID:   "5KawlOMHjWeUjQtnuRs22c",
		},
		{
			name:     "playlist link",
			text:     "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M",
			wantKind: InputPlaylist,
			wantID:   "37i9dQZF1DXcBWIGoYBM5M",
		},
		{
			name:     "short link",
			text:     "https://spotify.link/AbCdEf",
			wantKind: InputShortLink,
		},
		{
			name:     "playlist beats short link",
			text:     "https://spotify.link/playlist/xyz789",
			wantKind: InputPlaylist,
			wantID:   "xyz789",
		},
		{
			name:     "free text",
			text:     "never gonna give you up",
			wantKind: InputNone,
		},
		{
			name:     "empty",
			text:     "   ",
			wantKind: InputNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Kind != tt.wantKind {
				t.Fatalf("Classify(%q).Kind = %v, want %v", tt.text, got.Kind, tt.wantKind)
			}
			if got.ID != tt.wantID {
				t.Errorf("Classify(%q).ID = %q, want %q", tt.text, got.ID, tt.wantID)
			}
		})
	}
}
