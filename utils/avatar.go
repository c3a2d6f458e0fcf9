package utils

import (
	"fmt"
	"math/rand"
	"net/url"
)

const (
	DefaultAvatarStyle = "bottts"

	avatarBaseUrl          = "https://api.dicebear.com/7.x"
	avatarBackgroundColors = "b6e3f4,c0aede,d1d4f9"
)

// AvatarStyles lists the styles the external avatar service accepts
var AvatarStyles = []string{
	"adventurer",
	"adventurer-neutral",
	"avataaars",
	"big-ears",
	"big-ears-neutral",
	"big-smile",
	"bottts",
	"croodles",
	"fun-emoji",
	"icons",
	"lorelei",
	"micah",
	"miniavs",
	"personas",
	"pixel-art",
}

// GenerateAvatarUrl builds the deterministic avatar URL for a style and seed.
// The image itself is rendered by the external service; the same (style, seed)
// pair always yields the same URL.
func GenerateAvatarUrl(style, seed string) string {
	if !ValidAvatarStyle(style) {
		style = DefaultAvatarStyle
	}
	return fmt.Sprintf("%s/%s/svg?seed=%s&backgroundColor=%s",
		avatarBaseUrl, style, url.QueryEscape(seed), avatarBackgroundColors)
}

// ValidAvatarStyle reports whether style is in the accepted catalog
func ValidAvatarStyle(style string) bool {
	for _, s := range AvatarStyles {
		if s == style {
			return true
		}
	}
	return false
}

// RandomAvatarStyle picks a style for newly created users
func RandomAvatarStyle() string {
	return AvatarStyles[rand.Intn(len(AvatarStyles))]
}
