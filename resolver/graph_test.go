/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/tokenpipe/resolver"
	"bennypowers.dev/tokenpipe/token"
)

func TestDependencyGraph_NoCycle(t *testing.T) {
	tokens := []*token.Token{
		{Category: "color", Name: "a", Value: "#000000"},
		{Category: "color", Name: "b", Value: "{color.a}"},
		{Category: "color", Name: "c", Value: "{color.b}"},
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"color-a", "color-b", "color-c"}
	if !slices.Equal(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestDependencyGraph_DependenciesFirst(t *testing.T) {
	tokens := []*token.Token{
		{Category: "color", Name: "link", Value: "{color.brand}"},
		{Category: "color", Name: "brand", Value: "#FF6B35"},
	}

	order, err := resolver.BuildDependencyGraph(tokens).TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"color-brand", "color-link"}
	if !slices.Equal(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	tokens := []*token.Token{
		{Category: "x", Name: "a", Value: "{x.c}"},
		{Category: "x", Name: "b", Value: "{x.a}"},
		{Category: "x", Name: "c", Value: "{x.b}"},
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}

	cycle := graph.FindCycle()
	want := []string{"x-a", "x-c", "x-b", "x-a"}
	if !slices.Equal(cycle, want) {
		t.Errorf("expected cycle %v, got %v", want, cycle)
	}

	if _, err := graph.TopologicalSort(); !errors.Is(err, resolver.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_Dependents(t *testing.T) {
	tokens := []*token.Token{
		{Category: "spacing", Name: "base", Value: "4px"},
		{Category: "spacing", Name: "pad", Value: "{spacing.base} {spacing.base}"},
		{Category: "shadow", Name: "card", Value: map[string]any{"blur": "{spacing.base}"}},
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if deps := graph.Dependencies("spacing-pad"); !slices.Equal(deps, []string{"spacing-base"}) {
		t.Errorf("unexpected dependencies %v", deps)
	}
	want := []string{"spacing-pad", "shadow-card"}
	if got := graph.Dependents("spacing-base"); !slices.Equal(got, want) {
		t.Errorf("expected dependents %v, got %v", want, got)
	}
	if got := graph.Dependencies("spacing-base"); len(got) != 0 {
		t.Errorf("expected no dependencies, got %v", got)
	}
}

func TestRefKey(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"color.brand.primary", "color-brand-primary"},
		{" spacing.md ", "spacing-md"},
		{"Font Size.Large", "font-size-large"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := resolver.RefKey(tt.ref); got != tt.want {
				t.Errorf("RefKey(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}
