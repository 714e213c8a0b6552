package models

import "testing"

func TestPromptHasTag(t *testing.T) {
	p := Prompt{Tags: []string{"engineering", "review"}}
	if !p.HasTag("review") {
		t.Error("expected tag match")
	}
	if p.HasTag("Review") {
		t.Error("tag matching must be case-sensitive")
	}
	if p.HasTag("") {
		t.Error("empty tag should not match")
	}
}

func TestTagHue(t *testing.T) {
	for _, tag := range []string{"", "qa", "engineering", "日本語", "a-very-long-tag-name"} {
		h := TagHue(tag)
		if h < 0 || h > 359 {
			t.Errorf("TagHue(%q) = %d, out of range", tag, h)
		}
		if h != TagHue(tag) {
			t.Errorf("TagHue(%q) not deterministic", tag)
		}
	}
	if TagHue("qa") == TagHue("docs") && TagHue("qa") == TagHue("team") {
		t.Error("suspiciously many hue collisions")
	}
}
