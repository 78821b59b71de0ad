package config

import "regexp"

// defaultPatternColor is the gold the stock background pattern ships
// with; client themes swap it for their brand color.
var defaultPatternColor = regexp.MustCompile(`(?i)#d4af37`)

// RecolorPattern rewrites every occurrence of the stock pattern color
// in the SVG asset with the client's brand color. Literal substitution
// is deliberate: the asset uses the color only for the motif strokes.
func RecolorPattern(svg []byte, brandColor string) []byte {
	if brandColor == "" {
		return svg
	}
	return defaultPatternColor.ReplaceAll(svg, []byte(brandColor))
}
