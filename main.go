package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/cli"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/server"
	"github.com/promptdeck/promptdeck/internal/ui"
	"github.com/promptdeck/promptdeck/internal/urlstate"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`promptdeck - Terminal catalog browser for prompt templates

USAGE:
    promptdeck [OPTIONS] [COMMAND]

OPTIONS:
    --help            Show this help information
    --version         Print version information
    --catalog <src>   Catalog document, local path or URL (default: prompts.json)
    --serve           Start the shareable view server
    --port <n>        Port for the view server (default: 8080)
    --theme <t>       Session theme override: light or dark
    --link <url>      Open the TUI on a shared view URL

COMMANDS:
    (no command)      Start interactive TUI mode
    list, ls          List prompts
    search <query>    Search prompts (--fuzzy for fuzzy ranking)
    get, show <id>    Show a specific prompt
    print <id>        Print a prompt body verbatim
    copy <id>         Copy a prompt body to the clipboard
    tags              List all tags
    export            Export the catalog as JSON
    share <id>        Print a share deep-link URL
    help              Show CLI command help

EXAMPLES:
    promptdeck                                    # Browse the catalog interactively
    promptdeck --catalog team.json list           # List a specific catalog
    promptdeck search "code review" --tag qa      # Search within a tag facet
    promptdeck --serve --port 9000                # Serve shareable views
    promptdeck --link "http://localhost:8080/?tags=qa#p=bug-report"

STORAGE:
    Preferences: ~/.promptdeck (override with PROMPTDECK_DIR)
`)
}

func main() {
	var showVersion bool
	var showHelp bool
	var catalogSrc string
	var serve bool
	var port int
	var themeFlag string
	var link string

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.StringVar(&catalogSrc, "catalog", "prompts.json", "Catalog document (path or URL)")
	flag.BoolVar(&serve, "serve", false, "Start the shareable view server")
	flag.IntVar(&port, "port", 8080, "Port for the view server")
	flag.StringVar(&themeFlag, "theme", "", "Session theme override (light|dark)")
	flag.StringVar(&link, "link", "", "Open the TUI on a shared view URL")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("promptdeck version %s\n", version)
		os.Exit(0)
	}

	// The one asynchronous step: the catalog is fetched once before any
	// rendering, and a broken source degrades to the built-in defaults.
	cat := catalog.LoadOrDefault(context.Background(), catalogSrc)

	if serve {
		srv := server.New(cat, port)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	shareBase := fmt.Sprintf("http://localhost:%d", port)

	args := flag.Args()
	if len(args) > 0 {
		cliHandler := cli.New(cat, shareBase)
		if err := cliHandler.ExecuteCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := ui.Options{
		State:     models.NewViewState(),
		ShareBase: shareBase,
	}
	switch themeFlag {
	case "light":
		opts.Theme = config.ThemeLight
	case "dark":
		opts.Theme = config.ThemeDark
	}
	if link != "" {
		state, deepID, err := urlstate.ParseLink(link)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring malformed link: %v\n", err)
		} else {
			opts.State = state
			opts.DeepLinkID = deepID
		}
	}

	model := ui.NewModel(cat, config.Load(), opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
