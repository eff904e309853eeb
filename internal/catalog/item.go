// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import "strings"

// Item is a single cleaned catalog record.
type Item struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
}

// CombinedText is the text the recommender vectorizes.
func (it Item) CombinedText() string {
	return it.Title + " " + it.Authors
}

// Catalog is an ordered, read-only collection of items. Titles are unique
// and no item has an empty title or authors.
type Catalog struct {
	items []Item
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at position i. It panics if i is out of range.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Normalize trims surrounding whitespace and lowercases s.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
