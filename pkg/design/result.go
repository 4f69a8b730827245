package design

// Status classifies a comparison result.
type Status string

const (
	// StatusMatch means the diff is within the domain tolerance.
	StatusMatch Status = "match"
	// StatusMismatch means the diff exceeds the domain tolerance, or the
	// values could not be meaningfully compared.
	StatusMismatch Status = "mismatch"
)

// MaxDiff is the sentinel diff for values that cannot be meaningfully
// compared: one side present and the other absent, or a comparison that
// failed to parse. It is a large finite number rather than Inf/NaN so that
// downstream arithmetic and JSON serialization stay well-defined. Results
// carrying it always classify as mismatch.
const MaxDiff = 1e9

// Result is one property-level comparison outcome. Property is namespaced
// as "<domain>:<field>", with an extra ":<index>" segment for indexed
// domains such as shadow layers. Figma and Web hold the compared values as
// they should appear in a report; either may be nil when that side had no
// value. Results are created by the comparators and never mutated.
type Result struct {
	NodeID   string  `json:"nodeId"`
	Property string  `json:"property"`
	Figma    any     `json:"figma"`
	Web      any     `json:"web"`
	Status   Status  `json:"status"`
	Diff     float64 `json:"diff"`
}
