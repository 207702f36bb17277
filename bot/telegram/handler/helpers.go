package handler

import (
	"regexp"
	"strings"
)

var urlMatcher = regexp.MustCompile(`https?://[^\s]+`)

// firstURL extracts the first URL from a message, trimming trailing
// punctuation a chat client may have glued on.
func firstURL(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	match := urlMatcher.FindString(text)
	match = strings.TrimRight(match, ".,!?)]}>")
	return strings.TrimSpace(match)
}

// commandName extracts a leading /command, honoring the /command@botname
// form used in groups. An empty result means "not a command for this bot".
func commandName(text, botName string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	parts := strings.SplitN(text, " ", 2)
	command := strings.TrimPrefix(parts[0], "/")
	if command == "" {
		return ""
	}
	if strings.Contains(command, "@") {
		seg := strings.SplitN(command, "@", 2)
		command = seg[0]
		if botName != "" && len(seg) > 1 && seg[1] != "" && seg[1] != botName {
			return ""
		}
	}
	return command
}
