package hltext

// LegendEntry pairs a highlight category with its display color for the
// host's legend.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// Legend lists the distinct category names appearing in segments, in first
// appearance order, each with its color from colorMap when present.
// Unhighlighted and score-labeled segments contribute nothing; colors for
// unmapped categories are left empty so the host can pick defaults.
func Legend(segments []Segment, colorMap map[string]string) []LegendEntry {
	seen := make(map[string]struct{})
	var out []LegendEntry
	for _, seg := range segments {
		if seg.Label.Kind != LabelName {
			continue
		}
		name := seg.Label.Name
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, LegendEntry{Label: name, Color: colorMap[name]})
	}
	return out
}
