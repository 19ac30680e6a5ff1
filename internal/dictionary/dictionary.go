// Package dictionary holds the vocabulary data model and its YAML loader.
package dictionary

// Word is a single vocabulary entry. Words are compared by position within
// their category, never by value.
type Word struct {
	Name        string
	Description string
	Link        string
}

// Category is a named, ordered group of words.
type Category struct {
	Name  string
	Words []Word
}

// Len returns the number of words in the category.
func (c *Category) Len() int {
	return len(c.Words)
}

// AllWords flattens every category's words in file order.
func AllWords(categories []Category) []Word {
	n := 0
	for i := range categories {
		n += len(categories[i].Words)
	}
	all := make([]Word, 0, n)
	for i := range categories {
		all = append(all, categories[i].Words...)
	}
	return all
}
