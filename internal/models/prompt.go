package models

// Prompt represents one reusable text template in the catalog.
type Prompt struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Body  string   `json:"body"`

	// AddedIndex is the zero-based position the prompt held in the source
	// document. It is assigned once at load time and drives recency sort.
	AddedIndex int `json:"-"`
}

// HasTag reports whether the prompt carries the exact tag string.
// Tag filtering is case-sensitive; normalization applies to text search only.
func (p Prompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagHue derives a stable display hue (0-359) for a tag from its characters.
// The hue only color-codes facet chips; collisions are acceptable.
func TagHue(tag string) int {
	h := 0
	for _, r := range tag {
		h = (h*31 + int(r)) % 360
	}
	if h < 0 {
		h += 360
	}
	return h
}
