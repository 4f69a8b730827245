package css

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/hellenic-development/design-diff/pkg/design"
)

// rgba is a parsed color with r/g/b in 0-255 and a in [0,1].
type rgba struct {
	r, g, b int
	a       float64
}

var canonicalRE = regexp.MustCompile(`^rgba\((\d+), (\d+), (\d+), ([0-9.]+)\)$`)

// NormalizeColorValue converts any supported color input into the single
// canonical form "rgba(R, G, B, A)" with R/G/B in 0-255 and A in [0,1].
// Supported inputs are hex strings (#rgb, #rgba, #rrggbb, #rrggbbaa),
// rgb()/rgba()/hsl()/hsla() strings, the literal "transparent", and
// r/g/b/a channel maps with values in [0,1] (the Figma color encoding).
// The second return value is false for unparseable input; callers
// substitute transparent-style defaults rather than failing the run.
func NormalizeColorValue(input any) (string, bool) {
	c, ok := parseColor(input)
	if !ok {
		return "", false
	}
	return formatRGBA(c), true
}

// ColorDifference returns a non-negative distance between two colors,
// summing the per-channel magnitudes of the r/g/b difference plus the
// alpha difference scaled to the same 0-255 range. Identical colors
// yield 0 and fully opposite colors 1020. If either side cannot be
// parsed the design.MaxDiff sentinel is returned so that downstream
// arithmetic stays total.
func ColorDifference(a, b string) float64 {
	ca, okA := parseColor(a)
	cb, okB := parseColor(b)
	if !okA || !okB {
		return design.MaxDiff
	}

	return math.Abs(float64(ca.r-cb.r)) +
		math.Abs(float64(ca.g-cb.g)) +
		math.Abs(float64(ca.b-cb.b)) +
		math.Abs(ca.a-cb.a)*255
}

// AlphaFromColor extracts the alpha channel from a color string, defaulting
// to 1 when the color cannot be parsed.
func AlphaFromColor(color string) float64 {
	if c, ok := parseColor(color); ok {
		return c.a
	}
	return 1
}

func formatRGBA(c rgba) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, formatAlpha(c.a))
}

// formatAlpha renders an alpha channel without trailing zeros, rounded to
// three decimals so hex-derived alphas (e.g. 128/255) stay readable.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*1000)/1000, 'g', -1, 64)
}

func parseColor(input any) (rgba, bool) {
	switch v := input.(type) {
	case string:
		return parseColorString(v)
	case map[string]any:
		return parseChannelMap(v)
	case map[string]float64:
		m := make(map[string]any, len(v))
		for k, f := range v {
			m[k] = f
		}
		return parseChannelMap(m)
	default:
		return rgba{}, false
	}
}

func parseColorString(s string) (rgba, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return rgba{}, false
	}

	if m := canonicalRE.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return rgba{}, false
		}
		return rgba{r: clampChannel(r), g: clampChannel(g), b: clampChannel(b), a: clampAlpha(a)}, true
	}

	lower := strings.ToLower(s)
	switch {
	case lower == "transparent":
		return rgba{0, 0, 0, 0}, true
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower)
	case strings.HasPrefix(lower, "rgb"):
		return parseRGBFunc(lower)
	case strings.HasPrefix(lower, "hsl"):
		return parseHSLFunc(lower)
	default:
		return rgba{}, false
	}
}

// parseHex handles #rgb, #rgba, #rrggbb, and #rrggbbaa. The rgb part is
// delegated to go-colorful; the optional alpha nibbles are peeled off
// first because colorful.Hex only understands 3- and 6-digit forms.
func parseHex(s string) (rgba, bool) {
	hex := strings.TrimPrefix(s, "#")
	alpha := 1.0

	switch len(hex) {
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(string(hex[3]), 2), 16, 8)
		if err != nil {
			return rgba{}, false
		}
		alpha = float64(a) / 255
		hex = hex[:3]
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return rgba{}, false
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	case 3, 6:
	default:
		return rgba{}, false
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return rgba{}, false
	}
	r, g, b := c.RGB255()
	return rgba{r: int(r), g: int(g), b: int(b), a: alpha}, true
}

func parseRGBFunc(s string) (rgba, bool) {
	args, ok := funcArgs(s, "rgb", "rgba")
	if !ok || len(args) < 3 {
		return rgba{}, false
	}

	var ch [3]int
	for i := 0; i < 3; i++ {
		n, ok := parseChannelArg(args[i])
		if !ok {
			return rgba{}, false
		}
		ch[i] = n
	}

	alpha := 1.0
	if len(args) >= 4 {
		a, ok := parseAlphaArg(args[3])
		if !ok {
			return rgba{}, false
		}
		alpha = a
	}

	return rgba{r: ch[0], g: ch[1], b: ch[2], a: alpha}, true
}

func parseHSLFunc(s string) (rgba, bool) {
	args, ok := funcArgs(s, "hsl", "hsla")
	if !ok || len(args) < 3 {
		return rgba{}, false
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return rgba{}, false
	}
	sat, ok := parsePercent(args[1])
	if !ok {
		return rgba{}, false
	}
	light, ok := parsePercent(args[2])
	if !ok {
		return rgba{}, false
	}

	alpha := 1.0
	if len(args) >= 4 {
		a, ok := parseAlphaArg(args[3])
		if !ok {
			return rgba{}, false
		}
		alpha = a
	}

	c := colorful.Hsl(h, sat, light)
	r, g, b := c.Clamped().RGB255()
	return rgba{r: int(r), g: int(g), b: int(b), a: alpha}, true
}

// parseChannelMap handles the Figma color object encoding with r/g/b/a
// channels in [0,1]. Alpha defaults to 1 when absent.
func parseChannelMap(m map[string]any) (rgba, bool) {
	r, okR := channelFloat(m, "r")
	g, okG := channelFloat(m, "g")
	b, okB := channelFloat(m, "b")
	if !okR || !okG || !okB {
		return rgba{}, false
	}

	a := 1.0
	if v, ok := channelFloat(m, "a"); ok {
		a = v
	}

	return rgba{
		r: clampChannel(int(math.Round(r * 255))),
		g: clampChannel(int(math.Round(g * 255))),
		b: clampChannel(int(math.Round(b * 255))),
		a: clampAlpha(a),
	}, true
}

func channelFloat(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// funcArgs strips a CSS functional notation like "rgba(...)" down to its
// comma- or space-separated arguments.
func funcArgs(s string, names ...string) ([]string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, false
	}

	name := strings.TrimSpace(s[:open])
	valid := false
	for _, n := range names {
		if name == n {
			valid = true
			break
		}
	}
	if !valid {
		return nil, false
	}

	body := s[open+1 : len(s)-1]
	body = strings.ReplaceAll(body, "/", " ")
	body = strings.ReplaceAll(body, ",", " ")

	args := strings.Fields(body)
	if len(args) == 0 {
		return nil, false
	}
	return args, true
}

func parseChannelArg(s string) (int, bool) {
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampChannel(int(math.Round(p * 255 / 100))), true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clampChannel(int(math.Round(n))), true
}

func parseAlphaArg(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampAlpha(p / 100), true
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clampAlpha(a), true
}

func parsePercent(s string) (float64, bool) {
	p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return math.Min(math.Max(p/100, 0), 1), true
}

func clampChannel(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
