/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "sort"

// Group holds the tokens of one category, in output order.
type Group struct {
	// Category is the shared category of the tokens.
	Category string

	// Tokens are ordered by SortOrder, ties keeping their input order.
	Tokens []*Token
}

// GroupByCategory buckets tokens by category. Groups appear in the order
// their category is first seen. Nil tokens are skipped and the input slice
// is not modified.
func GroupByCategory(tokens []*Token) []*Group {
	var groups []*Group
	index := make(map[string]*Group)
	for _, tok := range tokens {
		if tok == nil {
			continue
		}
		g, ok := index[tok.Category]
		if !ok {
			g = &Group{Category: tok.Category}
			index[tok.Category] = g
			groups = append(groups, g)
		}
		g.Tokens = append(g.Tokens, tok)
	}
	for _, g := range groups {
		sort.SliceStable(g.Tokens, func(i, j int) bool {
			return g.Tokens[i].SortOrder < g.Tokens[j].SortOrder
		})
	}
	return groups
}

// Ordered returns a new slice of tokens in generator output order: grouped
// by category, then by SortOrder.
func Ordered(tokens []*Token) []*Token {
	result := make([]*Token, 0, len(tokens))
	for _, g := range GroupByCategory(tokens) {
		result = append(result, g.Tokens...)
	}
	return result
}
