package intent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the immutable set of known intents, kept in file order.
// It is safe for concurrent reads.
type Catalog struct {
	intents []Intent
	byTag   map[string]int
}

// NewCatalog validates intents and builds a catalog. Tags must be non-empty
// and unique. Response sets are checked later against the classifier labels.
func NewCatalog(intents []Intent) (*Catalog, error) {
	if len(intents) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		intents: make([]Intent, 0, len(intents)),
		byTag:   make(map[string]int, len(intents)),
	}
	for i, it := range intents {
		tag := strings.TrimSpace(it.Tag)
		if tag == "" {
			return nil, fmt.Errorf("intent #%d: %w", i, ErrEmptyTag)
		}
		if _, dup := c.byTag[tag]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
		}
		c.byTag[tag] = len(c.intents)
		c.intents = append(c.intents, Intent{
			Tag:       tag,
			Patterns:  append([]string(nil), it.Patterns...),
			Responses: append([]string(nil), it.Responses...),
		})
	}
	return c, nil
}

// Load reads a catalog from a .json, .yaml or .yml file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	return NewCatalog(doc.Intents)
}

// Lookup returns the intent registered under tag.
func (c *Catalog) Lookup(tag string) (Intent, bool) {
	i, ok := c.byTag[tag]
	if !ok {
		return Intent{}, false
	}
	return c.intents[i], true
}

// Tags returns all tags in catalog order.
func (c *Catalog) Tags() []string {
	tags := make([]string, len(c.intents))
	for i, it := range c.intents {
		tags[i] = it.Tag
	}
	return tags
}

// Intents returns a copy of the catalog entries in catalog order.
func (c *Catalog) Intents() []Intent {
	return append([]Intent(nil), c.intents...)
}

// Summaries lists each intent with its pattern and response counts.
func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, len(c.intents))
	for i, it := range c.intents {
		out[i] = Summary{Tag: it.Tag, PatternCount: len(it.Patterns), ResponseCount: len(it.Responses)}
	}
	return out
}

// Examples flattens every pattern into parallel text/tag slices, the
// training set used by the trainer and the TF-IDF vocabulary.
func (c *Catalog) Examples() (texts []string, tags []string) {
	for _, it := range c.intents {
		for _, p := range it.Patterns {
			texts = append(texts, p)
			tags = append(tags, it.Tag)
		}
	}
	return texts, tags
}

// Len returns the number of intents.
func (c *Catalog) Len() int { return len(c.intents) }
