package property

import "strings"

// Filter returns the records matching f, in their original order. The
// returned slice never aliases properties.
func Filter(properties []Property, f Filters) []Property {
	search := strings.ToLower(f.Search)
	out := make([]Property, 0, len(properties))
	for _, p := range properties {
		if !f.Type.Matches(p.Type) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Location), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
