// Package design defines the node model shared by the normalizers and the
// comparison engine: the loosely-typed raw records produced by the
// extraction collaborators, and the canonical normalized form every
// comparator operates on.
package design

// RawNode is a source-specific node record as delivered by an extraction
// collaborator (the Figma exporter or the web scraper). Style values are
// loosely typed: colors arrive in arbitrary encodings, numeric values as
// numbers or CSS-like strings, shadows as a string, a single structured
// shadow, or a list of structured shadows. The engine only reads RawNodes;
// it never mutates them.
type RawNode struct {
	NodeID   string `json:"nodeId"`
	Name     string `json:"name,omitempty"`
	Selector string `json:"selector,omitempty"`

	Colors     map[string]any `json:"colors,omitempty"`
	Typography map[string]any `json:"typography,omitempty"`
	Spacing    map[string]any `json:"spacing,omitempty"`
	Radius     map[string]any `json:"radius,omitempty"`
	Shadows    map[string]any `json:"shadows,omitempty"`
	Layout     map[string]any `json:"layout,omitempty"`
	Tokens     map[string]any `json:"tokens,omitempty"`
}

// Node is the canonical form of a design element. It is created fresh per
// comparison run, never mutated after construction, and carries no
// back-reference to its raw source. NodeID is the join key between the
// Figma and web node sets.
type Node struct {
	NodeID   string `json:"nodeId"`
	Name     string `json:"name,omitempty"`
	Selector string `json:"selector,omitempty"`
	Styles   Styles `json:"styles"`
}

// Styles holds the six fixed style domains plus the open token map.
// Colors are canonical rgba strings, numeric fields are absolute pixels,
// and shadow entries are ordered lists of normalized layers.
type Styles struct {
	Colors     map[string]string   `json:"colors,omitempty"`
	Typography Typography          `json:"typography"`
	Spacing    Spacing             `json:"spacing"`
	Radius     Radius              `json:"radius"`
	Shadows    map[string][]Shadow `json:"shadows,omitempty"`
	Layout     Layout              `json:"layout"`
	Tokens     map[string]string   `json:"tokens,omitempty"`
}

// Typography holds text styling. Numeric fields use pointers so that
// "not specified" stays distinct from "designed as zero".
type Typography struct {
	FontFamily    *string  `json:"fontFamily,omitempty"`
	FontSize      *float64 `json:"fontSize,omitempty"`
	FontWeight    *float64 `json:"fontWeight,omitempty"`
	LineHeight    *float64 `json:"lineHeight,omitempty"`
	LetterSpacing *float64 `json:"letterSpacing,omitempty"`
	TextTransform *string  `json:"textTransform,omitempty"`
}

// Spacing holds the margin, padding, and gap measurements in pixels.
type Spacing struct {
	MarginTop     *float64 `json:"marginTop,omitempty"`
	MarginRight   *float64 `json:"marginRight,omitempty"`
	MarginBottom  *float64 `json:"marginBottom,omitempty"`
	MarginLeft    *float64 `json:"marginLeft,omitempty"`
	PaddingTop    *float64 `json:"paddingTop,omitempty"`
	PaddingRight  *float64 `json:"paddingRight,omitempty"`
	PaddingBottom *float64 `json:"paddingBottom,omitempty"`
	PaddingLeft   *float64 `json:"paddingLeft,omitempty"`
	Gap           *float64 `json:"gap,omitempty"`
}

// Radius holds the four corner radii in pixels.
type Radius struct {
	TopLeft     *float64 `json:"topLeft,omitempty"`
	TopRight    *float64 `json:"topRight,omitempty"`
	BottomRight *float64 `json:"bottomRight,omitempty"`
	BottomLeft  *float64 `json:"bottomLeft,omitempty"`
}

// Layout holds the box dimensions and position in pixels.
type Layout struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

// Shadow is one normalized shadow layer. Color is a canonical rgba string
// and Alpha duplicates its alpha channel for direct numeric access.
// Constructed once per layer and never mutated.
type Shadow struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Blur   float64 `json:"blur"`
	Spread float64 `json:"spread"`
	Color  string  `json:"color"`
	Alpha  float64 `json:"alpha"`
}

// NumericField pairs a field name with its optional pixel value. The
// comparators iterate these lists instead of reflecting over structs so
// that result ordering is fixed.
type NumericField struct {
	Name  string
	Value *float64
}

// NumericFields returns the spacing fields in their fixed comparison order.
func (s Spacing) NumericFields() []NumericField {
	return []NumericField{
		{"marginTop", s.MarginTop},
		{"marginRight", s.MarginRight},
		{"marginBottom", s.MarginBottom},
		{"marginLeft", s.MarginLeft},
		{"paddingTop", s.PaddingTop},
		{"paddingRight", s.PaddingRight},
		{"paddingBottom", s.PaddingBottom},
		{"paddingLeft", s.PaddingLeft},
		{"gap", s.Gap},
	}
}

// NumericFields returns the radius fields in their fixed comparison order.
func (r Radius) NumericFields() []NumericField {
	return []NumericField{
		{"topLeft", r.TopLeft},
		{"topRight", r.TopRight},
		{"bottomRight", r.BottomRight},
		{"bottomLeft", r.BottomLeft},
	}
}

// NumericFields returns the layout fields in their fixed comparison order.
func (l Layout) NumericFields() []NumericField {
	return []NumericField{
		{"width", l.Width},
		{"height", l.Height},
		{"x", l.X},
		{"y", l.Y},
	}
}

// Float returns a pointer to v. Convenience for building nodes literally.
func Float(v float64) *float64 { return &v }

// String returns a pointer to s. Convenience for building nodes literally.
func String(s string) *string { return &s }
