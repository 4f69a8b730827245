package css

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hellenic-development/design-diff/pkg/design"
)

// shadowColorRE matches the color token of a shadow declaration:
// rgb()/rgba()/hsl()/hsla() functional notation or a hex literal.
var shadowColorRE = regexp.MustCompile(`(?i)(rgba?\([^)]*\)|hsla?\([^)]*\)|#[0-9a-f]{3,8})`)

// opaqueBlack is the CSS default shadow color.
const opaqueBlack = "rgba(0, 0, 0, 1)"

// ParseShadowString parses a single CSS shadow declaration into a
// normalized layer. The inset keyword is stripped (the inset/outset
// distinction is not modeled), the trailing color token is extracted by
// pattern, and the remaining whitespace-separated lengths are read
// positionally as "offsetX offsetY [blurRadius [spreadRadius]]". Blur and
// spread default to 0; the two offsets are mandatory, so fewer than two
// numeric tokens is a parse failure and returns nil. A missing color
// defaults to opaque black.
//
// Callers split comma-separated multi-shadow declarations with
// SplitShadowList before calling.
func ParseShadowString(value string, baseFontSize float64) *design.Shadow {
	s := strings.TrimSpace(value)
	if s == "" || strings.EqualFold(s, "none") {
		return nil
	}

	s = strings.ReplaceAll(s, "inset", "")

	color := opaqueBlack
	if loc := shadowColorRE.FindStringIndex(s); loc != nil {
		normalized, ok := NormalizeColorValue(s[loc[0]:loc[1]])
		if !ok {
			return nil
		}
		color = normalized
		s = s[:loc[0]] + s[loc[1]:]
	}

	var lengths []float64
	for _, tok := range strings.Fields(s) {
		n, ok := ParseUnitValue(tok, baseFontSize)
		if !ok {
			return nil
		}
		lengths = append(lengths, n)
	}
	if len(lengths) < 2 {
		return nil
	}

	shadow := &design.Shadow{
		X:     lengths[0],
		Y:     lengths[1],
		Color: color,
		Alpha: AlphaFromColor(color),
	}
	if len(lengths) > 2 {
		shadow.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		shadow.Spread = lengths[3]
	}
	return shadow
}

// SplitShadowList splits a comma-separated multi-shadow declaration into
// individual layer declarations. Commas inside color functions such as
// rgba(0, 0, 0, 0.5) do not split.
func SplitShadowList(value string) []string {
	var parts []string
	depth := 0
	start := 0

	for i, r := range value {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, value[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, value[start:])

	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}

// FormatShadow renders a normalized shadow back to a canonical CSS string
// for display and debugging. A nil shadow renders as the empty string.
func FormatShadow(shadow *design.Shadow) string {
	if shadow == nil {
		return ""
	}
	return fmt.Sprintf("%gpx %gpx %gpx %gpx %s",
		shadow.X, shadow.Y, shadow.Blur, shadow.Spread, shadow.Color)
}
