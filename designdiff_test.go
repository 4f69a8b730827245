package designdiff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hellenic-development/design-diff/pkg/design"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const figmaJSON = `[{
	"nodeId": "1:23",
	"name": "Primary Button",
	"colors": {"background": {"r": 0, "g": 0, "b": 1, "a": 1}},
	"typography": {"fontFamily": "Inter", "fontSize": 16, "fontWeight": "bold"},
	"spacing": {"paddingTop": 8},
	"layout": {"width": 200, "height": 48}
}]`

const webJSON = `[{
	"nodeId": "1:23",
	"selector": ".btn-primary",
	"colors": {"background": "rgb(0, 0, 255)"},
	"typography": {"fontFamily": "inter", "fontSize": "1rem", "fontWeight": "700"},
	"spacing": {"paddingTop": "0.5rem"},
	"layout": {"width": "200px", "height": "48px"}
}]`

func TestRun(t *testing.T) {
	opts := Options{
		FigmaFile: writeFile(t, "figma.json", figmaJSON),
		WebFile:   writeFile(t, "web.json", webJSON),
		Title:     "button",
	}

	result, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.Summary.Mismatches != 0 {
		t.Errorf("summary = %+v, want all matches", result.Summary)
		for _, r := range result.Results {
			if r.Status != design.StatusMatch {
				t.Logf("mismatch: %+v", r)
			}
		}
	}
	if result.Summary.Total == 0 {
		t.Error("no properties compared")
	}
	if !strings.Contains(result.Markdown, "# Design Comparison Report - button") {
		t.Error("markdown title missing")
	}
}

func TestRunDerivesTitleFromFiles(t *testing.T) {
	opts := Options{
		FigmaFile: writeFile(t, "homepage-figma.json", `[]`),
		WebFile:   writeFile(t, "homepage-web.json", `[]`),
	}

	result, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(result.Markdown, "homepage-figma vs homepage-web") {
		t.Errorf("derived title missing from markdown")
	}
	if result.Summary.MatchRate != 1 {
		t.Errorf("empty run match rate = %v, want 1", result.Summary.MatchRate)
	}
}

func TestRunMismatch(t *testing.T) {
	web := `[{
		"nodeId": "1:23",
		"colors": {"background": "rgb(200, 0, 0)"},
		"layout": {"width": "300px"}
	}]`

	opts := Options{
		FigmaFile: writeFile(t, "figma.json", figmaJSON),
		WebFile:   writeFile(t, "web.json", web),
	}

	result, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Summary.Mismatches == 0 {
		t.Error("expected mismatches for diverging styles")
	}
}

func TestLoadNodes(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		nodes, err := LoadNodes(writeFile(t, "nodes.json", figmaJSON))
		if err != nil {
			t.Fatalf("LoadNodes() error: %v", err)
		}
		if len(nodes) != 1 || nodes[0].NodeID != "1:23" {
			t.Errorf("nodes = %+v", nodes)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := LoadNodes(""); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadNodes(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("not an array", func(t *testing.T) {
		path := writeFile(t, "object.json", `{"nodeId": "1"}`)
		_, err := LoadNodes(path)
		if err == nil {
			t.Fatal("expected error for non-array JSON")
		}
		if !strings.Contains(err.Error(), "expected a JSON array") {
			t.Errorf("error = %v, want array hint", err)
		}
	})

	t.Run("malformed style values load fine", func(t *testing.T) {
		path := writeFile(t, "weird.json", `[{"nodeId": "n", "colors": {"bg": 42}}]`)
		nodes, err := LoadNodes(path)
		if err != nil {
			t.Fatalf("LoadNodes() error: %v", err)
		}
		if len(nodes) != 1 {
			t.Errorf("nodes = %+v", nodes)
		}
	})
}

func TestCompareIsPure(t *testing.T) {
	raw := []design.RawNode{{
		NodeID: "n",
		Colors: map[string]any{"bg": "#fff"},
	}}

	first := Compare(raw, raw, Options{})
	second := Compare(raw, raw, Options{})
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs across runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
