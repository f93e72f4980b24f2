package cubestate

import (
	"fmt"
	"sort"
	"strings"
)

// Scheme maps physical sticker color names to the face whose center
// carries that color. It converts what a person reads off a real cube into
// facelet symbols.
type Scheme map[string]Face

// DefaultScheme is the standard orientation: white on top, green in front.
var DefaultScheme = Scheme{
	"white":  FaceU,
	"red":    FaceR,
	"green":  FaceF,
	"yellow": FaceD,
	"orange": FaceL,
	"blue":   FaceB,
}

// Validate checks that the scheme names exactly one color per face.
func (s Scheme) Validate() error {
	if len(s) != NumFaces {
		return fmt.Errorf("scheme has %d colors, want %d", len(s), NumFaces)
	}
	var seen [NumFaces]string
	for _, name := range s.names() {
		face := s[name]
		if !face.Valid() {
			return fmt.Errorf("scheme color %q maps to invalid face %d", name, int(face))
		}
		if seen[face] != "" {
			return fmt.Errorf("scheme colors %q and %q both map to %s", seen[face], name, face)
		}
		seen[face] = name
	}
	return nil
}

// names returns the scheme's color names in sorted order.
func (s Scheme) names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color looks up a color name, ignoring case and surrounding space.
func (s Scheme) Color(name string) (Color, error) {
	face, ok := s[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return face.HomeColor(), nil
}

// Name returns the color name for a facelet color, or the color's symbol
// when the scheme does not cover it.
func (s Scheme) Name(c Color) string {
	for _, name := range s.names() {
		if s[name].HomeColor() == c {
			return name
		}
	}
	return c.String()
}

// Facelets converts 54 color names, given in facelet-string order, to a
// facelet string. The result is validated with Decode.
func (s Scheme) Facelets(names []string) (string, error) {
	if len(names) != NumFacelets {
		return "", &LengthError{Length: len(names)}
	}

	buf := make([]byte, NumFacelets)
	for i, name := range names {
		color, err := s.Color(name)
		if err != nil {
			return "", fmt.Errorf("facelet %d: %w", i, err)
		}
		buf[i] = color.Byte()
	}

	facelets := string(buf)
	if err := Validate(facelets); err != nil {
		return "", err
	}
	return facelets, nil
}
