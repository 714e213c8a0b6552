// Package urlstate maps the view state to and from URL query parameters
// and the deep-link fragment, so any filter/sort configuration is
// shareable as a plain URL.
package urlstate

import (
	"net/url"
	"strings"

	"github.com/promptdeck/promptdeck/internal/models"
)

// Parse builds a view state from URL query parameters. Absent parameters
// take their defaults; unknown tags are kept verbatim (they simply match
// nothing) and an unrecognized sort value falls back to title order.
func Parse(values url.Values) models.ViewState {
	state := models.NewViewState()
	state.Query = values.Get("q")
	state.Sort = models.ParseSortMode(values.Get("sort"))
	if raw := values.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t != "" {
				state.SelectedTags = append(state.SelectedTags, t)
			}
		}
	}
	return state
}

// Values is the inverse of Parse. Parameters equal to their default are
// omitted entirely so published URLs stay minimal.
func Values(state models.ViewState) url.Values {
	v := url.Values{}
	if state.Query != "" {
		v.Set("q", state.Query)
	}
	if state.Sort != "" && state.Sort != models.SortTitle {
		v.Set("sort", string(state.Sort))
	}
	if len(state.SelectedTags) > 0 {
		v.Set("tags", strings.Join(state.SelectedTags, ","))
	}
	return v
}

// Encode renders Values as a query string with a fixed q, sort, tags order,
// rather than url.Values' map order, so published URLs are deterministic.
func Encode(state models.ViewState) string {
	v := Values(state)
	var parts []string
	for _, key := range []string{"q", "sort", "tags"} {
		if val := v.Get(key); val != "" {
			parts = append(parts, key+"="+url.QueryEscape(val))
		}
	}
	return strings.Join(parts, "&")
}

// Fragment builds the deep-link fragment for a prompt id, without the
// leading '#'. Empty id yields an empty fragment.
func Fragment(id string) string {
	if id == "" {
		return ""
	}
	return "p=" + url.QueryEscape(id)
}

// ParseFragment extracts the deep-linked prompt id from a URL fragment.
// Malformed or unrelated fragments yield "", never an error.
func ParseFragment(frag string) string {
	frag = strings.TrimPrefix(frag, "#")
	vals, err := url.ParseQuery(frag)
	if err != nil {
		return ""
	}
	return vals.Get("p")
}

// ShareLink composes a shareable URL for the given view state and optional
// prompt id against a base address.
func ShareLink(base string, state models.ViewState, id string) string {
	link := strings.TrimRight(base, "/") + "/"
	if qs := Encode(state); qs != "" {
		link += "?" + qs
	}
	if frag := Fragment(id); frag != "" {
		link += "#" + frag
	}
	return link
}

// ParseLink extracts the view state and deep-link id from a shared URL.
func ParseLink(raw string) (models.ViewState, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return models.NewViewState(), "", err
	}
	// u.Fragment is already percent-decoded; ParseFragment decodes once
	// itself, so hand it the escaped form.
	return Parse(u.Query()), ParseFragment(u.EscapedFragment()), nil
}
