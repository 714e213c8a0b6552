// Package catalog loads and holds the prompt collection. The catalog is
// read once per session and never mutated afterwards; there are no create,
// update or delete operations.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/promptdeck/promptdeck/internal/models"
)

// Catalog is the in-memory prompt store plus original load order.
type Catalog struct {
	prompts []models.Prompt
}

// New builds a catalog from already-decoded prompts, reassigning AddedIndex
// by position. Mostly useful for tests and the built-in default set.
func New(prompts []models.Prompt) *Catalog {
	out := make([]models.Prompt, len(prompts))
	copy(out, prompts)
	for i := range out {
		out[i].AddedIndex = i
		if out[i].Tags == nil {
			out[i].Tags = []string{}
		}
	}
	return &Catalog{prompts: out}
}

// Load fetches and decodes the catalog document from a local path or an
// HTTP(S) URL. Single attempt, no retry. Any fetch failure, non-2xx status
// or payload that is not a JSON array of objects is an error; the caller
// decides whether to fall back (see LoadOrDefault).
func Load(ctx context.Context, source string) (*Catalog, error) {
	data, err := fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	prompts, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &Catalog{prompts: prompts}, nil
}

// LoadOrDefault loads the catalog and, on any failure, substitutes the
// built-in default set. The failure surfaces only as a stderr warning;
// nothing user-visible is raised.
func LoadOrDefault(ctx context.Context, source string) *Catalog {
	c, err := Load(ctx, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load catalog from %s: %v; using built-in defaults\n", source, err)
		return New(defaultPrompts())
	}
	return c
}

// Prompts returns the full store in load order. Callers must not mutate
// the returned slice.
func (c *Catalog) Prompts() []models.Prompt {
	return c.prompts
}

// Len returns the number of prompts in the store.
func (c *Catalog) Len() int {
	return len(c.prompts)
}

// Get returns the prompt with the given id. When duplicate ids exist the
// first occurrence wins, which keeps deep-link resolution deterministic.
func (c *Catalog) Get(id string) (models.Prompt, bool) {
	for _, p := range c.prompts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Prompt{}, false
}

// Export writes the full store (not the filtered view) as pretty-printed
// JSON with the fields id, title, tags and body, suitable for loading back
// through Load.
func (c *Catalog) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.prompts)
}

// ExportFile exports the store to a file path.
func (c *Catalog) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()
	if err := c.Export(f); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.Contains(source, "://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog URL: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, nil
}

// decode maps the raw document to prompts, coercing malformed per-record
// fields to safe defaults. Only a payload that is not an array of objects
// fails the whole load.
func decode(data []byte) ([]models.Prompt, error) {
	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("catalog is not an array of objects: %w", err)
	}
	// A literal null unmarshals into a nil slice without error.
	if items == nil {
		return nil, fmt.Errorf("catalog is not an array of objects: got null")
	}

	prompts := make([]models.Prompt, 0, len(items))
	seen := make(map[string]int, len(items))
	for i, item := range items {
		p := coerce(item, i)
		p.AddedIndex = i
		if first, dup := seen[p.ID]; dup {
			// Duplicates stay in the store, but deep-linking can only
			// resolve one of them.
			fmt.Fprintf(os.Stderr, "Warning: duplicate prompt id %q (positions %d and %d)\n", p.ID, first, i)
		} else {
			seen[p.ID] = i
		}
		prompts = append(prompts, p)
	}
	return prompts, nil
}

func coerce(item map[string]any, pos int) models.Prompt {
	p := models.Prompt{
		ID:    stringField(item, "id"),
		Title: stringField(item, "title"),
		Body:  stringField(item, "body"),
		Tags:  tagsField(item["tags"]),
	}
	if strings.TrimSpace(p.ID) == "" {
		p.ID = fmt.Sprintf("p-%d", pos)
	}
	if p.Title == "" {
		p.Title = "Untitled"
	}
	return p
}

func stringField(item map[string]any, key string) string {
	if s, ok := item[key].(string); ok {
		return s
	}
	return ""
}

// tagsField coerces the raw tags value to a string slice. Non-string
// elements are dropped; duplicates and order are preserved for display.
func tagsField(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return []string{}
	}
	tags := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}
