// Package designdiff compares the visual design properties of a Figma
// node tree against a rendered web page's computed styles and reports,
// property by property, whether the implementation matches the design
// within configurable tolerances.
//
// The CLI lives in cmd/design-diff; this root package exposes the same
// pipeline as a Go API so that callers can embed comparison in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named designdiff:
//
//	import "github.com/hellenic-development/design-diff" // package designdiff
//
// # Quick start
//
//	result, err := designdiff.Run(designdiff.Options{
//	    FigmaFile: "figma-nodes.json",
//	    WebFile:   "web-nodes.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.md", []byte(result.Markdown), 0644)
//
// # Pipeline
//
// Raw nodes flow one direction: normalize (pkg/normalize, built on the
// pkg/css primitives) → pair by node ID → compare per domain
// (pkg/compare) → flat result list. The engine holds no state between
// calls; every public function is a pure transformation of its inputs and
// is safe to invoke concurrently.
//
// # Tolerances
//
// Each style domain carries a default tolerance (the maximum diff still
// classified as a match). Override per domain through
// [Options.Tolerance], or load overrides from a TOML file with
// compare.LoadToleranceConfig.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # HTTP boundary
//
// pkg/server exposes the same engine over HTTP (POST /api/compare) for
// deployments where extraction collaborators deliver node sets remotely.
package designdiff
