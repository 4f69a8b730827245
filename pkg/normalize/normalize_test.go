package normalize

import (
	"reflect"
	"testing"

	"github.com/hellenic-development/design-diff/pkg/design"
)

func TestFigmaNodes(t *testing.T) {
	raw := []design.RawNode{
		{
			NodeID: "1:23",
			Name:   "Primary Button",
			Colors: map[string]any{
				"background": map[string]any{"r": 0.0, "g": 0.0, "b": 1.0, "a": 1.0},
			},
			Typography: map[string]any{
				"fontFamily": "Inter",
				"fontSize":   16.0,
				"fontWeight": "bold",
				"lineHeight": 24.0,
			},
			Spacing: map[string]any{
				"paddingTop":  8.0,
				"paddingLeft": 12.0,
			},
			Radius: map[string]any{
				"topLeft": 4.0,
			},
			Shadows: map[string]any{
				"boxShadow": map[string]any{
					"offset": map[string]any{"x": 0.0, "y": 2.0},
					"radius": 4.0,
					"color":  map[string]any{"r": 0.0, "g": 0.0, "b": 0.0, "a": 0.25},
				},
			},
			Layout: map[string]any{
				"width":  200.0,
				"height": 48.0,
			},
			Tokens: map[string]any{
				"button.radius": 4.0,
				"button.kind":   "primary",
			},
		},
	}

	nodes := FigmaNodes(raw, Options{})
	if len(nodes) != 1 {
		t.Fatalf("FigmaNodes() returned %d nodes, want 1", len(nodes))
	}

	node := nodes[0]
	if node.NodeID != "1:23" || node.Name != "Primary Button" {
		t.Errorf("identity not preserved: %+v", node)
	}

	if got := node.Styles.Colors["background"]; got != "rgba(0, 0, 255, 1)" {
		t.Errorf("background = %q, want rgba(0, 0, 255, 1)", got)
	}

	typ := node.Styles.Typography
	if typ.FontFamily == nil || *typ.FontFamily != "Inter" {
		t.Errorf("fontFamily = %v, want Inter", typ.FontFamily)
	}
	if typ.FontSize == nil || *typ.FontSize != 16 {
		t.Errorf("fontSize = %v, want 16", typ.FontSize)
	}
	if typ.FontWeight == nil || *typ.FontWeight != 700 {
		t.Errorf("fontWeight = %v, want 700 (bold keyword)", typ.FontWeight)
	}
	if typ.LetterSpacing != nil {
		t.Errorf("letterSpacing should stay absent, got %v", *typ.LetterSpacing)
	}

	if node.Styles.Spacing.PaddingTop == nil || *node.Styles.Spacing.PaddingTop != 8 {
		t.Errorf("paddingTop = %v, want 8", node.Styles.Spacing.PaddingTop)
	}
	if node.Styles.Spacing.MarginTop != nil {
		t.Error("marginTop should stay absent, not default to zero")
	}

	layers := node.Styles.Shadows["boxShadow"]
	if len(layers) != 1 {
		t.Fatalf("boxShadow layers = %d, want 1", len(layers))
	}
	want := design.Shadow{X: 0, Y: 2, Blur: 4, Spread: 0, Color: "rgba(0, 0, 0, 0.25)", Alpha: 0.25}
	if !reflect.DeepEqual(layers[0], want) {
		t.Errorf("layer = %+v, want %+v", layers[0], want)
	}

	if got := node.Styles.Tokens["button.radius"]; got != "4" {
		t.Errorf("numeric token = %q, want \"4\"", got)
	}
	if got := node.Styles.Tokens["button.kind"]; got != "primary" {
		t.Errorf("string token = %q, want primary", got)
	}
}

func TestWebNodes(t *testing.T) {
	raw := []design.RawNode{
		{
			NodeID:   "1:23",
			Selector: ".btn-primary",
			Colors: map[string]any{
				"background": "rgb(0, 0, 255)",
				"border":     "not-a-color",
			},
			Typography: map[string]any{
				"fontSize":   "1rem",
				"fontWeight": "700",
			},
			Spacing: map[string]any{
				"paddingTop": "0.5rem",
			},
			Shadows: map[string]any{
				"boxShadow": "0 2px 4px rgba(0, 0, 0, 0.25), 0 1px 2px #000",
			},
			Layout: map[string]any{
				"width": "200px",
			},
		},
	}

	nodes := WebNodes(raw, Options{BaseFontSize: 16})
	if len(nodes) != 1 {
		t.Fatalf("WebNodes() returned %d nodes, want 1", len(nodes))
	}

	node := nodes[0]
	if node.Selector != ".btn-primary" {
		t.Errorf("selector = %q, want .btn-primary", node.Selector)
	}

	if got := node.Styles.Colors["background"]; got != "rgba(0, 0, 255, 1)" {
		t.Errorf("background = %q, want rgba(0, 0, 255, 1)", got)
	}
	// Unparseable colors degrade to transparent so the key still compares.
	if got := node.Styles.Colors["border"]; got != "rgba(0, 0, 0, 0)" {
		t.Errorf("border = %q, want transparent substitute", got)
	}

	if node.Styles.Typography.FontSize == nil || *node.Styles.Typography.FontSize != 16 {
		t.Errorf("fontSize = %v, want 16 (1rem)", node.Styles.Typography.FontSize)
	}
	if node.Styles.Typography.FontWeight == nil || *node.Styles.Typography.FontWeight != 700 {
		t.Errorf("fontWeight = %v, want 700", node.Styles.Typography.FontWeight)
	}

	if node.Styles.Spacing.PaddingTop == nil || *node.Styles.Spacing.PaddingTop != 8 {
		t.Errorf("paddingTop = %v, want 8 (0.5rem)", node.Styles.Spacing.PaddingTop)
	}

	layers := node.Styles.Shadows["boxShadow"]
	if len(layers) != 2 {
		t.Fatalf("boxShadow layers = %d, want 2", len(layers))
	}
	if layers[0].Y != 2 || layers[0].Blur != 4 {
		t.Errorf("first layer = %+v", layers[0])
	}
	if layers[1].Y != 1 || layers[1].Color != "rgba(0, 0, 0, 1)" {
		t.Errorf("second layer = %+v", layers[1])
	}

	if node.Styles.Layout.Width == nil || *node.Styles.Layout.Width != 200 {
		t.Errorf("width = %v, want 200", node.Styles.Layout.Width)
	}
	if node.Styles.Layout.Height != nil {
		t.Error("height should stay absent")
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := []design.RawNode{
		{NodeID: "c"}, {NodeID: "a"}, {NodeID: "b"},
	}
	nodes := FigmaNodes(raw, Options{})
	got := []string{nodes[0].NodeID, nodes[1].NodeID, nodes[2].NodeID}
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if nodes := WebNodes(nil, Options{}); len(nodes) != 0 {
		t.Errorf("WebNodes(nil) = %v, want empty", nodes)
	}
}

func TestNormalizeShadowList(t *testing.T) {
	raw := []design.RawNode{
		{
			NodeID: "n",
			Shadows: map[string]any{
				"effects": []any{
					map[string]any{"x": 0.0, "y": 1.0, "blur": 2.0},
					map[string]any{"x": 0.0, "y": 4.0, "blur": 8.0, "spread": 1.0},
				},
			},
		},
	}

	nodes := FigmaNodes(raw, Options{})
	layers := nodes[0].Styles.Shadows["effects"]
	if len(layers) != 2 {
		t.Fatalf("layers = %d, want 2", len(layers))
	}
	if layers[1].Spread != 1 {
		t.Errorf("second layer spread = %v, want 1", layers[1].Spread)
	}
}
