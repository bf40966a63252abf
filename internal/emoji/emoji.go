package emoji

import "strings"

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	Green  = "🟢"
	Red    = "🔴"
	Blue   = "🔵"
	Black  = "⚫"
	White  = "⚪"
	Flower = "🌸"
	Error  = "🚫"
)

var colours = map[string]string{
	"green": Green,
	"red":   Red,
	"blue":  Blue,
	"black": Black,
}

// MapColour maps a palette colour name to its marker.
func MapColour(colour string) string {
	if e, ok := colours[strings.ToLower(colour)]; ok {
		return e
	}
	return White
}

// MapLabel maps the label to the marker of its colour in the given palette.
func MapLabel(label string, palette map[string]string, fallback string) string {
	if label == "" {
		return Error
	}
	if colour, ok := palette[label]; ok {
		return MapColour(colour)
	}
	return MapColour(fallback)
}
