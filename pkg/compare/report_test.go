package compare

import (
	"testing"

	"github.com/hellenic-development/design-diff/pkg/design"
)

func TestBuildReportIdenticalNodes(t *testing.T) {
	node := design.Node{
		NodeID: "1:23",
		Name:   "Button",
		Styles: design.Styles{
			Colors: map[string]string{"background": "rgba(0, 0, 255, 1)"},
			Typography: design.Typography{
				FontFamily: design.String("Inter"),
				FontSize:   design.Float(16),
			},
			Spacing: design.Spacing{PaddingTop: design.Float(8)},
			Radius:  design.Radius{TopLeft: design.Float(4)},
			Shadows: map[string][]design.Shadow{
				"boxShadow": {{Y: 2, Blur: 4, Color: "rgba(0, 0, 0, 0.25)", Alpha: 0.25}},
			},
			Layout: design.Layout{Width: design.Float(200)},
			Tokens: map[string]string{"kind": "primary"},
		},
	}

	results := BuildReport([]design.Node{node}, []design.Node{node}, DefaultTolerance())
	if len(results) == 0 {
		t.Fatal("expected results for a populated node")
	}
	for _, r := range results {
		if r.Status != design.StatusMatch || r.Diff != 0 {
			t.Errorf("%s: %+v, want match with diff 0", r.Property, r)
		}
	}
}

func TestBuildReportComparatorOrder(t *testing.T) {
	node := design.Node{
		NodeID: "n",
		Styles: design.Styles{
			Colors:     map[string]string{"fg": "#fff"},
			Typography: design.Typography{FontSize: design.Float(16)},
			Spacing:    design.Spacing{Gap: design.Float(4)},
			Radius:     design.Radius{TopLeft: design.Float(2)},
			Shadows: map[string][]design.Shadow{
				"boxShadow": {{Y: 1, Blur: 2, Color: "rgba(0, 0, 0, 1)", Alpha: 1}},
			},
			Layout: design.Layout{Width: design.Float(10)},
			Tokens: map[string]string{"k": "v"},
		},
	}

	results := BuildReport([]design.Node{node}, []design.Node{node}, DefaultTolerance())
	want := []string{
		"colors:fg",
		"typography:fontSize",
		"spacing:gap",
		"radius:topLeft",
		"shadows:boxShadow:0",
		"layout:width",
		"tokens:k",
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Property != want[i] {
			t.Errorf("result %d = %q, want %q", i, r.Property, want[i])
		}
	}
}

func TestBuildReportUnmatchedFigmaNode(t *testing.T) {
	figma := []design.Node{{
		NodeID: "1:23",
		Styles: design.Styles{
			Colors: map[string]string{"background": "#fff"},
			Layout: design.Layout{Width: design.Float(100)},
		},
	}}

	results := BuildReport(figma, nil, DefaultTolerance())
	if len(results) != 1 {
		t.Fatalf("got %d results, want exactly one synthetic node result", len(results))
	}
	r := results[0]
	if r.Property != "node" || r.Status != design.StatusMismatch || r.Diff != design.MaxDiff {
		t.Errorf("result = %+v, want node mismatch with sentinel diff", r)
	}
	if r.Figma != "present" || r.Web != nil {
		t.Errorf("values = (%v, %v), want (present, nil)", r.Figma, r.Web)
	}
}

func TestBuildReportIgnoresWebOnlyNodes(t *testing.T) {
	web := []design.Node{{
		NodeID: "web-only",
		Styles: design.Styles{Colors: map[string]string{"background": "#fff"}},
	}}

	if results := BuildReport(nil, web, DefaultTolerance()); len(results) != 0 {
		t.Errorf("got %d results, want 0 (report is figma-driven)", len(results))
	}
}

func TestBuildReportNodeOrderFollowsFigmaInput(t *testing.T) {
	figma := []design.Node{
		{NodeID: "z", Styles: design.Styles{Tokens: map[string]string{"k": "v"}}},
		{NodeID: "a", Styles: design.Styles{Tokens: map[string]string{"k": "v"}}},
	}
	web := []design.Node{
		{NodeID: "a", Styles: design.Styles{Tokens: map[string]string{"k": "v"}}},
		{NodeID: "z", Styles: design.Styles{Tokens: map[string]string{"k": "v"}}},
	}

	results := BuildReport(figma, web, DefaultTolerance())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].NodeID != "z" || results[1].NodeID != "a" {
		t.Errorf("node order = %s, %s; want z, a", results[0].NodeID, results[1].NodeID)
	}
}

func TestBuildReportAppliesTolerance(t *testing.T) {
	figma := []design.Node{{
		NodeID: "n",
		Styles: design.Styles{Spacing: design.Spacing{Gap: design.Float(10)}},
	}}
	web := []design.Node{{
		NodeID: "n",
		Styles: design.Styles{Spacing: design.Spacing{Gap: design.Float(13)}},
	}}

	strict := BuildReport(figma, web, DefaultTolerance())
	if strict[0].Status != design.StatusMismatch {
		t.Errorf("default tolerance: %+v, want mismatch", strict[0])
	}

	loose := DefaultTolerance()
	loose.Spacing = 5
	relaxed := BuildReport(figma, web, loose)
	if relaxed[0].Status != design.StatusMatch {
		t.Errorf("loose tolerance: %+v, want match", relaxed[0])
	}
}
