package utils

import (
	"fmt"
	"net/url"
	"strings"
)

const diceBearBase = "https://api.dicebear.com/7.x"

// DiceBearURL builds a deterministic placeholder-avatar URL for a seed string.
// Style must be one of the DiceBear collection names (avataaars, bottts,
// identicon, initials, pixel-art).
func DiceBearURL(seed, style string) string {
	if style == "" {
		style = "avataaars"
	}
	return fmt.Sprintf("%s/%s/svg?seed=%s", diceBearBase, style, url.QueryEscape(seed))
}

// AvatarURL returns the uploaded avatar URL when present, otherwise a
// DiceBear fallback seeded with the user's name.
func AvatarURL(avatarURL, name string) string {
	if strings.TrimSpace(avatarURL) != "" {
		return avatarURL
	}
	if name == "" {
		name = "user"
	}
	return DiceBearURL(name, "avataaars")
}

// Initials derives a two-letter abbreviation from a full name.
func Initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "??"
	}
	parts := strings.Fields(name)
	if len(parts) >= 2 {
		return strings.ToUpper(string([]rune(parts[0])[0]) + string([]rune(parts[len(parts)-1])[0]))
	}
	runes := []rune(name)
	if len(runes) == 1 {
		return strings.ToUpper(string(runes[0]))
	}
	return strings.ToUpper(string(runes[:2]))
}
