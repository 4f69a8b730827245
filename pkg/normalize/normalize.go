// Package normalize maps source-specific raw node records into the
// canonical design.Node shape. There is one normalizer per source: the
// Figma side receives values as the design tool exports them (plain pixel
// numbers, r/g/b/a channel objects, structured shadow effects), the web
// side receives computed-style strings (CSS lengths, color functions,
// box-shadow declarations). Both route every field through the css
// primitives, default missing fields to absent rather than zero, and pass
// tokens through verbatim.
package normalize

import (
	"strconv"

	"github.com/hellenic-development/design-diff/pkg/css"
	"github.com/hellenic-development/design-diff/pkg/design"
)

// Options configures a normalization pass.
type Options struct {
	// BaseFontSize resolves rem/em lengths. Zero means
	// css.DefaultBaseFontSize.
	BaseFontSize float64
}

func (o Options) baseFontSize() float64 {
	if o.BaseFontSize > 0 {
		return o.BaseFontSize
	}
	return css.DefaultBaseFontSize
}

// FigmaNodes normalizes raw nodes exported from the design tool. Input
// order and node IDs are preserved; one canonical node is produced per
// input node.
func FigmaNodes(raw []design.RawNode, opts Options) []design.Node {
	return normalizeAll(raw, opts.baseFontSize())
}

// WebNodes normalizes raw nodes scraped from a rendered page's computed
// styles. Input order and node IDs are preserved; one canonical node is
// produced per input node.
func WebNodes(raw []design.RawNode, opts Options) []design.Node {
	return normalizeAll(raw, opts.baseFontSize())
}

// normalizeAll is shared by both sources: the css primitives accept every
// encoding either side produces, so the per-source difference lives in the
// inputs, not in the routing.
func normalizeAll(raw []design.RawNode, baseFontSize float64) []design.Node {
	nodes := make([]design.Node, 0, len(raw))
	for _, r := range raw {
		nodes = append(nodes, normalizeNode(r, baseFontSize))
	}
	return nodes
}

func normalizeNode(raw design.RawNode, baseFontSize float64) design.Node {
	return design.Node{
		NodeID:   raw.NodeID,
		Name:     raw.Name,
		Selector: raw.Selector,
		Styles: design.Styles{
			Colors:     normalizeColors(raw.Colors),
			Typography: normalizeTypography(raw.Typography, baseFontSize),
			Spacing:    normalizeSpacing(raw.Spacing, baseFontSize),
			Radius:     normalizeRadius(raw.Radius, baseFontSize),
			Shadows:    normalizeShadows(raw.Shadows, baseFontSize),
			Layout:     normalizeLayout(raw.Layout, baseFontSize),
			Tokens:     normalizeTokens(raw.Tokens),
		},
	}
}

// normalizeColors canonicalizes every color entry. Unparseable colors
// degrade to transparent instead of dropping the key, so the comparator
// still reports on them.
func normalizeColors(colors map[string]any) map[string]string {
	if len(colors) == 0 {
		return nil
	}
	out := make(map[string]string, len(colors))
	for key, value := range colors {
		if normalized, ok := css.NormalizeColorValue(value); ok {
			out[key] = normalized
		} else {
			out[key] = "rgba(0, 0, 0, 0)"
		}
	}
	return out
}

func normalizeTypography(t map[string]any, baseFontSize float64) design.Typography {
	out := design.Typography{}
	if len(t) == 0 {
		return out
	}

	if s, ok := stringValue(t["fontFamily"]); ok {
		out.FontFamily = design.String(s)
	}
	if s, ok := stringValue(t["textTransform"]); ok {
		out.TextTransform = design.String(s)
	}
	out.FontSize = pixelValue(t["fontSize"], baseFontSize)
	out.LineHeight = pixelValue(t["lineHeight"], baseFontSize)
	out.LetterSpacing = pixelValue(t["letterSpacing"], baseFontSize)
	out.FontWeight = fontWeightValue(t["fontWeight"])
	return out
}

func normalizeSpacing(s map[string]any, baseFontSize float64) design.Spacing {
	if len(s) == 0 {
		return design.Spacing{}
	}
	return design.Spacing{
		MarginTop:     pixelValue(s["marginTop"], baseFontSize),
		MarginRight:   pixelValue(s["marginRight"], baseFontSize),
		MarginBottom:  pixelValue(s["marginBottom"], baseFontSize),
		MarginLeft:    pixelValue(s["marginLeft"], baseFontSize),
		PaddingTop:    pixelValue(s["paddingTop"], baseFontSize),
		PaddingRight:  pixelValue(s["paddingRight"], baseFontSize),
		PaddingBottom: pixelValue(s["paddingBottom"], baseFontSize),
		PaddingLeft:   pixelValue(s["paddingLeft"], baseFontSize),
		Gap:           pixelValue(s["gap"], baseFontSize),
	}
}

func normalizeRadius(r map[string]any, baseFontSize float64) design.Radius {
	if len(r) == 0 {
		return design.Radius{}
	}
	return design.Radius{
		TopLeft:     pixelValue(r["topLeft"], baseFontSize),
		TopRight:    pixelValue(r["topRight"], baseFontSize),
		BottomRight: pixelValue(r["bottomRight"], baseFontSize),
		BottomLeft:  pixelValue(r["bottomLeft"], baseFontSize),
	}
}

func normalizeLayout(l map[string]any, baseFontSize float64) design.Layout {
	if len(l) == 0 {
		return design.Layout{}
	}
	return design.Layout{
		Width:  pixelValue(l["width"], baseFontSize),
		Height: pixelValue(l["height"], baseFontSize),
		X:      pixelValue(l["x"], baseFontSize),
		Y:      pixelValue(l["y"], baseFontSize),
	}
}

// normalizeShadows accepts, per key, a CSS shadow string (possibly a
// comma-separated multi-shadow declaration), a single structured shadow,
// or a list of structured shadows, and produces the ordered layer list.
// Layers that fail to parse are dropped; an entry whose layers all fail
// still appears with an empty list so the comparator can flag it.
func normalizeShadows(shadows map[string]any, baseFontSize float64) map[string][]design.Shadow {
	if len(shadows) == 0 {
		return nil
	}

	out := make(map[string][]design.Shadow, len(shadows))
	for key, value := range shadows {
		out[key] = normalizeShadowValue(value, baseFontSize)
	}
	return out
}

func normalizeShadowValue(value any, baseFontSize float64) []design.Shadow {
	switch v := value.(type) {
	case string:
		var layers []design.Shadow
		for _, part := range css.SplitShadowList(v) {
			if shadow := css.ParseShadowString(part, baseFontSize); shadow != nil {
				layers = append(layers, *shadow)
			}
		}
		return layers
	case map[string]any:
		if shadow := structuredShadow(v, baseFontSize); shadow != nil {
			return []design.Shadow{*shadow}
		}
		return nil
	case []any:
		var layers []design.Shadow
		for _, item := range v {
			layers = append(layers, normalizeShadowValue(item, baseFontSize)...)
		}
		return layers
	default:
		return nil
	}
}

// structuredShadow reads a shadow object. Both the engine's own field
// names (x, y, blur) and the Figma effect names (offset, radius) are
// accepted.
func structuredShadow(m map[string]any, baseFontSize float64) *design.Shadow {
	x, okX := firstPixel(m, baseFontSize, "x", "offsetX")
	y, okY := firstPixel(m, baseFontSize, "y", "offsetY")
	if !okX && !okY {
		if offset, ok := m["offset"].(map[string]any); ok {
			x, okX = firstPixel(offset, baseFontSize, "x")
			y, okY = firstPixel(offset, baseFontSize, "y")
		}
	}
	if !okX || !okY {
		return nil
	}

	blur, _ := firstPixel(m, baseFontSize, "blur", "radius")
	spread, _ := firstPixel(m, baseFontSize, "spread")

	color := "rgba(0, 0, 0, 1)"
	if c, ok := css.NormalizeColorValue(m["color"]); ok {
		color = c
	}

	return &design.Shadow{
		X:      x,
		Y:      y,
		Blur:   blur,
		Spread: spread,
		Color:  color,
		Alpha:  css.AlphaFromColor(color),
	}
}

// firstPixel reads the first present key from m and converts it to
// pixels.
func firstPixel(m map[string]any, baseFontSize float64, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if n, parsed := css.ParseUnitValue(v, baseFontSize); parsed {
				return n, true
			}
		}
	}
	return 0, false
}

// normalizeTokens stringifies token values consistently; tokens are
// compared by exact equality so no further normalization applies.
func normalizeTokens(tokens map[string]any) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out[key] = stringifyToken(value)
	}
	return out
}

func stringifyToken(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// pixelValue converts a raw length into absolute pixels, or absent when
// the value is missing or unparseable.
func pixelValue(raw any, baseFontSize float64) *float64 {
	if raw == nil {
		return nil
	}
	if n, ok := css.ParseUnitValue(raw, baseFontSize); ok {
		return design.Float(n)
	}
	return nil
}

// fontWeightValue handles the CSS keyword weights on top of the numeric
// forms: "bold" maps to 700 and "normal" to 400.
func fontWeightValue(raw any) *float64 {
	if s, ok := raw.(string); ok {
		switch normalizeKeyword(s) {
		case "bold":
			return design.Float(700)
		case "normal":
			return design.Float(400)
		}
	}
	return pixelValue(raw, css.DefaultBaseFontSize)
}

func normalizeKeyword(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b = append(b, c)
	}
	return string(b)
}

func stringValue(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
