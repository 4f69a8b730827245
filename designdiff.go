package designdiff

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hellenic-development/design-diff/pkg/compare"
	"github.com/hellenic-development/design-diff/pkg/design"
	"github.com/hellenic-development/design-diff/pkg/normalize"
	"github.com/hellenic-development/design-diff/pkg/report"
)

// Options configures a comparison run.
type Options struct {
	FigmaFile    string                  // path to the exported Figma raw-node JSON
	WebFile      string                  // path to the scraped web raw-node JSON
	Title        string                  // report title; empty = derived from file names
	BaseFontSize float64                 // rem/em resolution; 0 = 16
	Tolerance    compare.ToleranceConfig // per-domain overrides, merged over defaults
	Logger       Logger                  // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the comparison output.
type Result struct {
	Results  []design.Result // flat property-level results, figma-node order
	Summary  report.Summary
	Markdown string // formatted markdown report
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Compare normalizes both raw node sets and builds the comparison report.
// It is a pure function of its inputs: no I/O, no shared state, safe to
// invoke concurrently. Callers that already hold normalized nodes should
// use compare.BuildReport directly instead.
func Compare(figmaRaw, webRaw []design.RawNode, opts Options) []design.Result {
	normOpts := normalize.Options{BaseFontSize: opts.BaseFontSize}
	figma := normalize.FigmaNodes(figmaRaw, normOpts)
	web := normalize.WebNodes(webRaw, normOpts)

	tolerance := opts.Tolerance.Resolve(compare.DefaultTolerance())
	return compare.BuildReport(figma, web, tolerance)
}

// Run executes the file-based comparison pipeline: load both raw node
// files, compare, and render the report.
func Run(opts Options) (*Result, error) {
	opts.logInfo("Loading Figma nodes from %s...", opts.FigmaFile)
	figmaRaw, err := LoadNodes(opts.FigmaFile)
	if err != nil {
		return nil, fmt.Errorf("load figma nodes: %w", err)
	}
	opts.logInfo("Loaded %d Figma node(s)", len(figmaRaw))

	opts.logInfo("Loading web nodes from %s...", opts.WebFile)
	webRaw, err := LoadNodes(opts.WebFile)
	if err != nil {
		return nil, fmt.Errorf("load web nodes: %w", err)
	}
	opts.logInfo("Loaded %d web node(s)", len(webRaw))

	opts.logInfo("Comparing %d Figma node(s) against %d web node(s)...", len(figmaRaw), len(webRaw))
	results := Compare(figmaRaw, webRaw, opts)

	summary := report.Summarize(results)
	opts.logInfo("Compared %d propert(ies): %d match, %d mismatch",
		summary.Total, summary.Matches, summary.Mismatches)

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s vs %s", baseName(opts.FigmaFile), baseName(opts.WebFile))
	}

	return &Result{
		Results:  results,
		Summary:  summary,
		Markdown: report.ToMarkdown(results, title),
	}, nil
}

// LoadNodes reads a JSON file containing a list of raw nodes. A file that
// does not hold a JSON array of node objects fails fast with a descriptive
// error; malformed style values inside nodes do not (they degrade to
// mismatch results during comparison).
func LoadNodes(path string) ([]design.RawNode, error) {
	if path == "" {
		return nil, fmt.Errorf("node file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var nodes []design.RawNode
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parse %s: expected a JSON array of nodes: %w", path, err)
	}
	return nodes, nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
