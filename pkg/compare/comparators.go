package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hellenic-development/design-diff/pkg/css"
	"github.com/hellenic-development/design-diff/pkg/design"
)

// binaryDiff is the mismatch diff for exact-equality comparisons (string
// typography fields and tokens).
const binaryDiff = 100

// classify derives the result status from a diff and the effective
// tolerance. The MaxDiff sentinel always classifies as mismatch.
func classify(diff, tolerance float64) design.Status {
	if diff <= tolerance && diff < design.MaxDiff {
		return design.StatusMatch
	}
	return design.StatusMismatch
}

// sanitize keeps diffs total: NaN and non-finite values collapse to the
// MaxDiff sentinel so a single bad property can never poison aggregate
// statistics.
func sanitize(diff float64) float64 {
	if math.IsNaN(diff) || math.IsInf(diff, 0) || diff > design.MaxDiff {
		return design.MaxDiff
	}
	if diff < 0 {
		return -diff
	}
	return diff
}

func newResult(nodeID, property string, figma, web any, diff, tolerance float64) design.Result {
	diff = sanitize(diff)
	return design.Result{
		NodeID:   nodeID,
		Property: property,
		Figma:    figma,
		Web:      web,
		Status:   classify(diff, tolerance),
		Diff:     diff,
	}
}

// unionKeys returns the sorted union of keys present on either side, so
// result ordering is deterministic regardless of map iteration order.
func unionKeys[V any](a, b map[string]V) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, dup := a[k]; !dup {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// CompareColors emits one result per color key present on at least one
// side. Both sides are re-normalized before measuring, which guards
// against callers passing already-normalized or still-raw strings. A key
// absent on both sides produces no result.
func CompareColors(nodeID string, figma, web map[string]string, tolerance float64) []design.Result {
	var results []design.Result
	for _, key := range unionKeys(figma, web) {
		fRaw, fOK := figma[key]
		wRaw, wOK := web[key]

		var f, w any
		diff := design.MaxDiff
		if fOK {
			f = fRaw
		}
		if wOK {
			w = wRaw
		}
		if fOK && wOK {
			fNorm, fParsed := css.NormalizeColorValue(fRaw)
			wNorm, wParsed := css.NormalizeColorValue(wRaw)
			if fParsed && wParsed {
				diff = css.ColorDifference(fNorm, wNorm)
				f, w = fNorm, wNorm
			}
		}

		results = append(results, newResult(nodeID, "colors:"+key, f, w, diff, tolerance))
	}
	return results
}

// CompareTypography diffs the numeric typography fields by absolute
// difference against the typography tolerance, then compares the string
// fields case-insensitively. String fields are binary (0 or 100) and
// their tolerance is always 0: there is no "close enough" font family.
func CompareTypography(nodeID string, figma, web design.Typography, tolerance float64) []design.Result {
	numeric := []struct {
		name string
		f, w *float64
	}{
		{"fontSize", figma.FontSize, web.FontSize},
		{"lineHeight", figma.LineHeight, web.LineHeight},
		{"letterSpacing", figma.LetterSpacing, web.LetterSpacing},
		{"fontWeight", figma.FontWeight, web.FontWeight},
	}

	var results []design.Result
	for _, field := range numeric {
		if r, ok := numericResult(nodeID, "typography:"+field.name, field.f, field.w, tolerance); ok {
			results = append(results, r)
		}
	}

	strFields := []struct {
		name string
		f, w *string
	}{
		{"fontFamily", figma.FontFamily, web.FontFamily},
		{"textTransform", figma.TextTransform, web.TextTransform},
	}
	for _, field := range strFields {
		if field.f == nil && field.w == nil {
			continue
		}
		var f, w any
		diff := float64(binaryDiff)
		if field.f != nil {
			f = *field.f
		}
		if field.w != nil {
			w = *field.w
		}
		if field.f != nil && field.w != nil && strings.EqualFold(*field.f, *field.w) {
			diff = 0
		}
		results = append(results, newResult(nodeID, "typography:"+field.name, f, w, diff, 0))
	}

	return results
}

// CompareSpacing diffs the fixed spacing fields by absolute difference.
// Fields absent on both sides are skipped.
func CompareSpacing(nodeID string, figma, web design.Spacing, tolerance float64) []design.Result {
	return compareNumericFields(nodeID, "spacing", figma.NumericFields(), web.NumericFields(), tolerance)
}

// CompareRadius diffs the four corner radii by absolute difference.
// Fields absent on both sides are skipped.
func CompareRadius(nodeID string, figma, web design.Radius, tolerance float64) []design.Result {
	return compareNumericFields(nodeID, "radius", figma.NumericFields(), web.NumericFields(), tolerance)
}

// CompareLayout diffs the box dimensions and position by absolute
// difference. Fields absent on both sides are skipped.
func CompareLayout(nodeID string, figma, web design.Layout, tolerance float64) []design.Result {
	return compareNumericFields(nodeID, "layout", figma.NumericFields(), web.NumericFields(), tolerance)
}

func compareNumericFields(nodeID, domain string, figma, web []design.NumericField, tolerance float64) []design.Result {
	var results []design.Result
	for i, field := range figma {
		if r, ok := numericResult(nodeID, domain+":"+field.Name, field.Value, web[i].Value, tolerance); ok {
			results = append(results, r)
		}
	}
	return results
}

// numericResult builds one result for a pair of optional pixel values.
// The second return value is false when the field is absent on both sides
// and no result should be emitted.
func numericResult(nodeID, property string, f, w *float64, tolerance float64) (design.Result, bool) {
	if f == nil && w == nil {
		return design.Result{}, false
	}

	var figma, web any
	diff := design.MaxDiff
	if f != nil {
		figma = *f
	}
	if w != nil {
		web = *w
	}
	if f != nil && w != nil {
		diff = math.Abs(*f - *w)
	}

	return newResult(nodeID, property, figma, web, diff, tolerance), true
}

// CompareShadows pairs shadow layers positionally per key, up to the
// longer of the two lists. A layer missing on one side still produces a
// result with the maximal diff: a dropped shadow layer is a real design
// deviation, never silently skipped. Layer order is significant; two
// equivalent shadows listed in a different order are reported as
// mismatches because their stacking differs.
func CompareShadows(nodeID string, figma, web map[string][]design.Shadow, tolerance float64) []design.Result {
	var results []design.Result
	for _, key := range unionKeys(figma, web) {
		fLayers := figma[key]
		wLayers := web[key]

		n := len(fLayers)
		if len(wLayers) > n {
			n = len(wLayers)
		}
		for i := 0; i < n; i++ {
			property := fmt.Sprintf("shadows:%s:%d", key, i)

			var f, w any
			diff := design.MaxDiff
			if i < len(fLayers) {
				f = css.FormatShadow(&fLayers[i])
			}
			if i < len(wLayers) {
				w = css.FormatShadow(&wLayers[i])
			}
			if i < len(fLayers) && i < len(wLayers) {
				diff = shadowLayerDiff(fLayers[i], wLayers[i])
			}

			results = append(results, newResult(nodeID, property, f, w, diff, tolerance))
		}
	}
	return results
}

// shadowLayerDiff sums the geometric channel differences plus the color
// distance of one layer pair.
func shadowLayerDiff(a, b design.Shadow) float64 {
	return math.Abs(a.X-b.X) +
		math.Abs(a.Y-b.Y) +
		math.Abs(a.Blur-b.Blur) +
		math.Abs(a.Spread-b.Spread) +
		css.ColorDifference(a.Color, b.Color)
}

// CompareTokens compares design tokens by exact value equality over the
// union of keys present on either side. The diff is binary and the
// tolerance is always 0; tokens either match or they do not.
func CompareTokens(nodeID string, figma, web map[string]string, tolerance float64) []design.Result {
	_ = tolerance // tokens ignore configured tolerances

	var results []design.Result
	for _, key := range unionKeys(figma, web) {
		fVal, fOK := figma[key]
		wVal, wOK := web[key]

		var f, w any
		diff := float64(binaryDiff)
		if fOK {
			f = fVal
		}
		if wOK {
			w = wVal
		}
		if fOK && wOK && fVal == wVal {
			diff = 0
		}

		results = append(results, newResult(nodeID, "tokens:"+key, f, w, diff, 0))
	}
	return results
}
