package models

import (
	"errors"
	"strings"
)

// ServiceCategory - the closed set of freelance services customers can order
type ServiceCategory string

const (
	CategoryWebsite   ServiceCategory = "website"
	CategoryDiscord   ServiceCategory = "discord"
	CategoryPlugins   ServiceCategory = "plugins"
	CategoryThumbnail ServiceCategory = "thumbnail"
	CategoryEditing   ServiceCategory = "editing"
)

var ErrUnknownCategory = errors.New("unknown service category")

type categoryInfo struct {
	Label string
	Emoji string
}

var categories = map[ServiceCategory]categoryInfo{
	CategoryWebsite:   {Label: "Web Development", Emoji: "🌐"},
	CategoryDiscord:   {Label: "Discord Server Management", Emoji: "💬"},
	CategoryPlugins:   {Label: "Plugin Development", Emoji: "🔌"},
	CategoryThumbnail: {Label: "Thumbnail Creation", Emoji: "🖼"},
	CategoryEditing:   {Label: "Video Editing", Emoji: "✏️"},
}

// Categories - the fixed button order of the picker
func Categories() []ServiceCategory {
	return []ServiceCategory{
		CategoryWebsite,
		CategoryDiscord,
		CategoryPlugins,
		CategoryThumbnail,
		CategoryEditing,
	}
}

// ParseServiceCategory - maps a raw identifier token back to a category
func ParseServiceCategory(s string) (ServiceCategory, error) {
	c := ServiceCategory(strings.ToLower(s))
	if _, ok := categories[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Label - human-readable service name
func (c ServiceCategory) Label() string {
	return categories[c].Label
}

// Emoji - picker button emoji
func (c ServiceCategory) Emoji() string {
	return categories[c].Emoji
}

// Title - capitalized category token, used in modal titles and log cards
func (c ServiceCategory) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
