package compare

import "github.com/hellenic-development/design-diff/pkg/design"

// BuildReport pairs the two canonical node sets by NodeID and runs every
// comparator on each pair. The report is figma-driven: a figma node with
// no web counterpart yields exactly one synthetic "node" mismatch and no
// per-domain results, while web nodes with no figma counterpart are not
// reported at all.
//
// Results are ordered by input figma-node order, then by the fixed
// comparator order: colors, typography, spacing, radius, shadows, layout,
// tokens.
func BuildReport(figma, web []design.Node, tolerance Tolerance) []design.Result {
	webByID := make(map[string]design.Node, len(web))
	for _, node := range web {
		webByID[node.NodeID] = node
	}

	var results []design.Result
	for _, f := range figma {
		w, found := webByID[f.NodeID]
		if !found {
			results = append(results, design.Result{
				NodeID:   f.NodeID,
				Property: "node",
				Figma:    "present",
				Web:      nil,
				Status:   design.StatusMismatch,
				Diff:     design.MaxDiff,
			})
			continue
		}

		results = append(results, CompareColors(f.NodeID, f.Styles.Colors, w.Styles.Colors, tolerance.Color)...)
		results = append(results, CompareTypography(f.NodeID, f.Styles.Typography, w.Styles.Typography, tolerance.Typography)...)
		results = append(results, CompareSpacing(f.NodeID, f.Styles.Spacing, w.Styles.Spacing, tolerance.Spacing)...)
		results = append(results, CompareRadius(f.NodeID, f.Styles.Radius, w.Styles.Radius, tolerance.Radius)...)
		results = append(results, CompareShadows(f.NodeID, f.Styles.Shadows, w.Styles.Shadows, tolerance.Shadow)...)
		results = append(results, CompareLayout(f.NodeID, f.Styles.Layout, w.Styles.Layout, tolerance.Layout)...)
		results = append(results, CompareTokens(f.NodeID, f.Styles.Tokens, w.Styles.Tokens, 0)...)
	}

	return results
}
