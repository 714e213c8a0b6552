package catalog

import "github.com/promptdeck/promptdeck/internal/models"

// defaultPrompts is the fallback set used when the catalog document cannot
// be loaded. Kept small and generally useful so a broken deployment still
// shows something sensible.
func defaultPrompts() []models.Prompt {
	return []models.Prompt{
		{
			ID:    "code-review",
			Title: "Code Review",
			Tags:  []string{"engineering", "review"},
			Body: "Review the following change for correctness, readability and edge cases.\n" +
				"Point out anything that would surprise a maintainer, and suggest concrete\n" +
				"improvements rather than general advice.\n\n{{diff}}",
		},
		{
			ID:    "bug-report",
			Title: "Bug Report",
			Tags:  []string{"qa", "engineering"},
			Body: "Write a clear bug report from the notes below. Include: observed behavior,\n" +
				"expected behavior, steps to reproduce, and environment details.\n\n{{notes}}",
		},
		{
			ID:    "standup-summary",
			Title: "Standup Summary",
			Tags:  []string{"team"},
			Body: "Summarize the following updates into a short standup note: what was done,\n" +
				"what is next, and any blockers.\n\n{{updates}}",
		},
		{
			ID:    "commit-message",
			Title: "Commit Message",
			Tags:  []string{"engineering"},
			Body: "Write a conventional commit message for this change. One-line subject in\n" +
				"imperative mood, then a short body explaining why.\n\n{{diff}}",
		},
	}
}
