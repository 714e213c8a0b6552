// Package cli provides the headless command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/promptdeck/promptdeck/internal/engine"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/urlstate"
)

// CLI executes one command against a loaded catalog and exits.
type CLI struct {
	catalog   *catalog.Catalog
	shareBase string
	out       io.Writer
}

// New creates a CLI instance. shareBase is the address share links point
// at, typically the local view server.
func New(cat *catalog.Catalog, shareBase string) *CLI {
	return &CLI{catalog: cat, shareBase: shareBase, out: os.Stdout}
}

// ExecuteCommand dispatches a CLI command.
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "list", "ls":
		return c.listPrompts(commandArgs)
	case "search":
		return c.searchPrompts(commandArgs)
	case "get", "show":
		return c.showPrompt(commandArgs)
	case "print":
		return c.printPrompt(commandArgs)
	case "copy":
		return c.copyPrompt(commandArgs)
	case "tags":
		return c.listTags(commandArgs)
	case "export":
		return c.exportCatalog(commandArgs)
	case "share":
		return c.sharePrompt(commandArgs)
	case "help":
		return c.printUsage()
	default:
		return fmt.Errorf("unknown command: %s. Use 'help' for usage information", command)
	}
}

// listPrompts lists prompts, optionally filtered and sorted.
func (c *CLI) listPrompts(args []string) error {
	state, format, _, err := parseViewFlags(args, false)
	if err != nil {
		return err
	}
	visible := engine.Visible(c.catalog.Prompts(), state)
	return c.formatOutput(visible, format)
}

// searchPrompts searches prompts by free text, substring by default or
// fuzzy-ranked with --fuzzy.
func (c *CLI) searchPrompts(args []string) error {
	state, format, useFuzzy, err := parseViewFlags(args, true)
	if err != nil {
		return err
	}
	if state.Query == "" {
		return fmt.Errorf("search requires a query")
	}

	var visible []models.Prompt
	if useFuzzy {
		visible = engine.FuzzyVisible(c.catalog.Prompts(), state)
	} else {
		visible = engine.Visible(c.catalog.Prompts(), state)
	}
	return c.formatOutput(visible, format)
}

// showPrompt displays one prompt with its metadata.
func (c *CLI) showPrompt(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("show requires a prompt ID")
	}
	p, ok := c.catalog.Get(args[0])
	if !ok {
		return fmt.Errorf("prompt not found: %s", args[0])
	}

	if len(args) > 1 && (args[1] == "--format" || args[1] == "-f") && len(args) > 2 && args[2] == "json" {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, string(data))
		return nil
	}

	fmt.Fprintf(c.out, "ID:    %s\n", p.ID)
	fmt.Fprintf(c.out, "Title: %s\n", p.Title)
	if len(p.Tags) > 0 {
		fmt.Fprintf(c.out, "Tags:  %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(c.out, "\n%s\n", p.Body)
	return nil
}

// printPrompt writes the raw body only, for piping into other tools.
func (c *CLI) printPrompt(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("print requires a prompt ID")
	}
	p, ok := c.catalog.Get(args[0])
	if !ok {
		return fmt.Errorf("prompt not found: %s", args[0])
	}
	fmt.Fprint(c.out, p.Body)
	if !strings.HasSuffix(p.Body, "\n") {
		fmt.Fprintln(c.out)
	}
	return nil
}

// copyPrompt puts a prompt's body on the system clipboard.
func (c *CLI) copyPrompt(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("copy requires a prompt ID")
	}
	p, ok := c.catalog.Get(args[0])
	if !ok {
		return fmt.Errorf("prompt not found: %s", args[0])
	}
	if err := clipboard.Copy(p.Body); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	fmt.Fprintf(c.out, "Copied %q to clipboard\n", p.Title)
	return nil
}

// listTags prints the tag universe in facet order.
func (c *CLI) listTags(args []string) error {
	format := ""
	for i, arg := range args {
		if (arg == "--format" || arg == "-f") && i+1 < len(args) {
			format = args[i+1]
		}
	}

	tags := engine.AllTags(c.catalog.Prompts())
	if format == "json" {
		data, err := json.MarshalIndent(tags, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, string(data))
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintln(c.out, tag)
	}
	return nil
}

// exportCatalog writes the full store as pretty-printed JSON.
func (c *CLI) exportCatalog(args []string) error {
	output := ""
	for i, arg := range args {
		if (arg == "--output" || arg == "-o") && i+1 < len(args) {
			output = args[i+1]
		}
	}

	if output == "" {
		return c.catalog.Export(c.out)
	}
	if err := c.catalog.ExportFile(output); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Exported %d prompts to %s\n", c.catalog.Len(), output)
	return nil
}

// sharePrompt prints (or copies) a deep-link URL for one prompt.
func (c *CLI) sharePrompt(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("share requires a prompt ID")
	}
	id := args[0]
	if _, ok := c.catalog.Get(id); !ok {
		return fmt.Errorf("prompt not found: %s", id)
	}

	link := urlstate.ShareLink(c.shareBase, models.NewViewState(), id)
	copyLink := false
	for _, arg := range args[1:] {
		if arg == "--copy" || arg == "-c" {
			copyLink = true
		}
	}

	if copyLink {
		if err := clipboard.Copy(link); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.out, "Share link copied to clipboard")
		return nil
	}
	fmt.Fprintln(c.out, link)
	return nil
}

// formatOutput renders a prompt list as text or JSON.
func (c *CLI) formatOutput(prompts []models.Prompt, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(prompts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal prompts: %w", err)
		}
		fmt.Fprintln(c.out, string(data))
		return nil
	}

	if len(prompts) == 0 {
		fmt.Fprintln(c.out, "No prompts found")
		return nil
	}
	for _, p := range prompts {
		line := fmt.Sprintf("%-20s %s", p.ID, p.Title)
		if len(p.Tags) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(p.Tags, ", "))
		}
		fmt.Fprintln(c.out, line)
	}
	return nil
}

// parseViewFlags extracts view-state flags shared by list and search.
// Positional words form the query when allowQuery is set.
func parseViewFlags(args []string, allowQuery bool) (models.ViewState, string, bool, error) {
	state := models.NewViewState()
	format := ""
	useFuzzy := false

	var queryParts []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 >= len(args) {
				return state, "", false, fmt.Errorf("%s requires a value", args[i])
			}
			i++
			format = args[i]
		case "--sort", "-s":
			if i+1 >= len(args) {
				return state, "", false, fmt.Errorf("%s requires a value", args[i])
			}
			i++
			state.Sort = models.ParseSortMode(args[i])
		case "--tag", "-t":
			if i+1 >= len(args) {
				return state, "", false, fmt.Errorf("%s requires a value", args[i])
			}
			i++
			state.ToggleTag(args[i])
		case "--fuzzy", "-z":
			useFuzzy = true
		default:
			if allowQuery {
				queryParts = append(queryParts, args[i])
			}
		}
	}
	state.Query = strings.Join(queryParts, " ")
	return state, format, useFuzzy, nil
}

func (c *CLI) printUsage() error {
	fmt.Fprint(c.out, `promptdeck commands:

  list, ls               List prompts (--sort title|recency, --tag <tag>, --format json)
  search <query>         Search prompts (substring; --fuzzy for fuzzy ranking)
  show, get <id>         Show a prompt with metadata (--format json)
  print <id>             Print a prompt body verbatim
  copy <id>              Copy a prompt body to the clipboard
  tags                   List all tags (--format json)
  export                 Export the catalog as JSON (--output <path>)
  share <id>             Print a share deep-link URL (--copy to clipboard)
  help                   Show this help
`)
	return nil
}
