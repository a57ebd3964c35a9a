package mixer

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Family identifies the color group a shade belongs to. The mixer only
// recognizes two families; everything else is rejected at the parsing
// boundary.
type Family string

// Recognized families.
const (
	FamilyYellow Family = "yellow"
	FamilyBlue   Family = "blue"
)

// Shade identifies a named variant within a family. Each shade has a fixed
// RGB constant; no other values are constructible from user input.
type Shade string

// Recognized shades.
const (
	ShadeStandard Shade = "standard"
	ShadeLight    Shade = "light"
	ShadeDark     Shade = "dark"
)

// Color is an immutable RGB triple with 8-bit components, tagged with the
// family and shade it was resolved from.
//
// Two colors are equal when their RGB triples are equal; the tags exist for
// the mixing algorithm and for presentation, not for identity.
type Color struct {
	R      uint8  `json:"r"`                // Red component (0-255)
	G      uint8  `json:"g"`                // Green component (0-255)
	B      uint8  `json:"b"`                // Blue component (0-255)
	Name   string `json:"name,omitempty"`   // Canonical name, e.g. "light-blue"
	Family Family `json:"family,omitempty"` // Family tag ("yellow" or "blue")
	Shade  Shade  `json:"shade,omitempty"`  // Shade tag within the family
}

// The closed color enumeration. Light and dark variants are the 50%
// truncating blends of the family anchor toward white and black.
var (
	Yellow      = Color{R: 255, G: 237, B: 0, Name: "yellow", Family: FamilyYellow, Shade: ShadeStandard}
	LightYellow = Color{R: 255, G: 246, B: 127, Name: "light-yellow", Family: FamilyYellow, Shade: ShadeLight}
	DarkYellow  = Color{R: 127, G: 118, B: 0, Name: "dark-yellow", Family: FamilyYellow, Shade: ShadeDark}
	Blue        = Color{R: 0, G: 71, B: 171, Name: "blue", Family: FamilyBlue, Shade: ShadeStandard}
	LightBlue   = Color{R: 127, G: 163, B: 213, Name: "light-blue", Family: FamilyBlue, Shade: ShadeLight}
	DarkBlue    = Color{R: 0, G: 35, B: 85, Name: "dark-blue", Family: FamilyBlue, Shade: ShadeDark}
)

// palette holds every recognized color, keyed both by canonical name and by
// uppercase hex so that names and hex codes resolve through the same lookup.
var palette = func() map[string]Color {
	p := make(map[string]Color)
	for _, c := range []Color{Yellow, LightYellow, DarkYellow, Blue, LightBlue, DarkBlue} {
		p[c.Name] = c
		p[c.Hex()] = c
	}
	return p
}()

// Hex formats the color as uppercase "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGB returns the components as a [r, g, b] triple, the shape used in JSON
// responses.
func (c Color) RGB() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Equal reports whether two colors have the same RGB triple. Tags are
// ignored.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// isYellowFamily and isBlueFamily are the category predicates used by the
// counting loop. They are deliberately unexported; callers outside the
// mixing algorithm should not branch on family membership.
func (c Color) isYellowFamily() bool { return c.Family == FamilyYellow }
func (c Color) isBlueFamily() bool   { return c.Family == FamilyBlue }

// ParseSpec resolves a user-supplied color spec to a Color from the closed
// enumeration.
//
// Parameters:
//   - spec: a family name ("yellow", "blue"), a fused shade name
//     ("light-yellow", "dark_blue"), or one of the recognized "#RRGGBB" hex
//     codes. Matching is case-insensitive; underscores are treated as
//     hyphens.
//   - shade: optional shade selector ("standard", "light", "dark"). An empty
//     value means "standard". The shade only applies to bare family names;
//     fused names and hex codes pin the shade themselves and ignore it.
//
// Returns ErrInvalidColorFormat for specs that are not even well-formed
// (empty string, malformed hex, unknown shade word) and ErrUnsupportedColor
// for well-formed specs outside the enumeration. The function never
// approximates: "#FFED01" fails even though it is one unit away from yellow.
func ParseSpec(spec string, shade string) (Color, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Color{}, fmt.Errorf("%w: empty color", ErrInvalidColorFormat)
	}

	if strings.HasPrefix(spec, "#") {
		return parseHexSpec(spec)
	}

	name := normalizeName(spec)

	sh := ShadeStandard
	if shade != "" {
		var ok bool
		if sh, ok = parseShade(shade); !ok {
			return Color{}, fmt.Errorf("%w: unknown shade %q", ErrInvalidColorFormat, shade)
		}
	}

	// Bare family names pick up the shade selector; fused names resolve
	// directly and ignore it.
	if name == string(FamilyYellow) || name == string(FamilyBlue) {
		if sh != ShadeStandard {
			name = string(sh) + "-" + name
		}
	}

	c, ok := palette[name]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupportedColor, spec)
	}
	return c, nil
}

// parseHexSpec validates a "#RRGGBB" spec and checks enumeration membership.
// go-colorful does the digit validation; the length check up front keeps the
// short "#RGB" form out, which this service does not accept.
func parseHexSpec(spec string) (Color, error) {
	if len(spec) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, spec)
	}
	if _, err := colorful.Hex(spec); err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, spec)
	}
	c, ok := palette[strings.ToUpper(spec)]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnsupportedColor, spec)
	}
	return c, nil
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

func parseShade(s string) (Shade, bool) {
	switch Shade(normalizeName(s)) {
	case ShadeStandard:
		return ShadeStandard, true
	case ShadeLight:
		return ShadeLight, true
	case ShadeDark:
		return ShadeDark, true
	default:
		return "", false
	}
}
