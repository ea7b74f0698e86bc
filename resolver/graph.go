/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves {group.token} references between tokens.
package resolver

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"bennypowers.dev/tokenpipe/token"
)

// ErrCircularReference indicates tokens that reference each other in a loop.
var ErrCircularReference = errors.New("circular reference")

// refPattern matches curly brace references: {token.reference.path}
var refPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// DependencyGraph is a directed graph of token references, keyed by
// token.Key. Nodes keep the order tokens were added in so that traversal
// is deterministic.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        []string
	known        map[string]bool
}

// BuildDependencyGraph builds a dependency graph from a list of tokens.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		known:        make(map[string]bool),
	}

	for _, tok := range tokens {
		if tok == nil {
			continue
		}
		key := tok.Key()
		if key == "" || graph.known[key] {
			continue
		}
		graph.known[key] = true
		graph.nodes = append(graph.nodes, key)
	}

	for _, tok := range tokens {
		if tok == nil {
			continue
		}
		key := tok.Key()
		if _, done := graph.dependencies[key]; done {
			continue
		}
		deps := References(tok.Value)
		if len(deps) > 0 {
			graph.dependencies[key] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], key)
			}
		}
	}

	return graph
}

// References returns the keys a value refers to, in order of appearance.
// Strings nested in objects and arrays are searched too.
func References(value any) []string {
	var refs []string
	seen := make(map[string]bool)
	walkStrings(value, func(s string) {
		for _, match := range refPattern.FindAllStringSubmatch(s, -1) {
			key := RefKey(match[1])
			if key != "" && !seen[key] {
				seen[key] = true
				refs = append(refs, key)
			}
		}
	})
	return refs
}

// RefKey converts a dotted reference path to a token key,
// e.g. "color.brand.primary" to "color-brand-primary".
func RefKey(ref string) string {
	segments := strings.Split(strings.TrimSpace(ref), ".")
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = slug.Make(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}

func walkStrings(value any, fn func(string)) {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, "{") {
			fn(v)
		}
	case map[string]any:
		for _, val := range v {
			walkStrings(val, fn)
		}
	case []any:
		for _, val := range v {
			walkStrings(val, fn)
		}
	}
}

// Dependencies returns the keys that the given token depends on.
func (g *DependencyGraph) Dependencies(key string) []string {
	if deps, ok := g.dependencies[key]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the keys of tokens that depend on the given token.
func (g *DependencyGraph) Dependents(key string) []string {
	if deps, ok := g.dependents[key]; ok {
		return deps
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular dependency.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		for i, n := range path {
			if n == node {
				cycle := append([]string{}, path[i:]...)
				return append(cycle, node)
			}
		}
		panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns keys in dependency order (dependencies first).
// Keys referenced but never defined are left out.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cycle, " -> "))
	}

	visited := make(map[string]bool)
	result := make([]string, 0, len(g.nodes))

	for _, node := range g.nodes {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	if g.known[node] {
		*stack = append(*stack, node)
	}
}
