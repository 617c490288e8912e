package service

import "strings"

// SegmentDelimiter separates the labeled parts of a maintenance description
const SegmentDelimiter = "|"

// Split routes each segment of description by its leading label
// segments with no known label go to both outputs
func Split(description string, partLabels, laborLabels []string) (parts, labor string) {
	var pb, lb strings.Builder
	for _, seg := range strings.Split(description, SegmentDelimiter) {
		seg = strings.TrimSpace(seg)
		low := strings.ToLower(seg)
		switch {
		case hasAnyPrefix(low, partLabels):
			pb.WriteString(" " + seg)
		case hasAnyPrefix(low, laborLabels):
			lb.WriteString(" " + seg)
		default:
			pb.WriteString(" " + seg)
			lb.WriteString(" " + seg)
		}
	}
	return pb.String(), lb.String()
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
