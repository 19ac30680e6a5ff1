package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoCategories is returned when a dictionary source contains no categories.
var ErrNoCategories = errors.New("dictionary has no categories")

// file mirrors the on-disk YAML layout.
type file struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	Name  *string     `yaml:"categorie"`
	Words []wordEntry `yaml:"mots"`
}

type wordEntry struct {
	Name        *string `yaml:"mot"`
	Description string  `yaml:"description"`
	Link        string  `yaml:"lien"`
}

// Load reads and parses the dictionary file at path.
func Load(path string) ([]Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	categories, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return categories, nil
}

// Parse decodes a dictionary document. Categories and words keep their
// document order; categories without words are kept.
func Parse(r io.Reader) ([]Category, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCategories
		}
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, ErrNoCategories
	}

	categories := make([]Category, 0, len(doc.Categories))
	for ci, ce := range doc.Categories {
		if ce.Name == nil {
			return nil, fmt.Errorf("parse dictionary: category %d: missing \"categorie\"", ci)
		}
		words := make([]Word, 0, len(ce.Words))
		for wi, we := range ce.Words {
			if we.Name == nil {
				return nil, fmt.Errorf("parse dictionary: category %q word %d: missing \"mot\"", *ce.Name, wi)
			}
			words = append(words, Word{
				Name:        *we.Name,
				Description: we.Description,
				Link:        we.Link,
			})
		}
		categories = append(categories, Category{Name: *ce.Name, Words: words})
	}
	return categories, nil
}
