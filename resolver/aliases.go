/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"strings"

	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/internal/num"
	"bennypowers.dev/tokenpipe/token"
)

// ResolveAliases replaces references in token values with the values they
// point at and returns the rewritten tokens. The input is not modified.
//
// A string that is exactly one reference, such as "{color.brand.primary}",
// takes the referenced value whatever its shape. References embedded in a
// longer string are substituted only when the referenced value is a string
// or a number. References to unknown tokens are left as written.
func ResolveAliases(tokens []*token.Token) ([]*token.Token, error) {
	graph := BuildDependencyGraph(tokens)

	order, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	resolved := make([]*token.Token, len(tokens))
	byKey := make(map[string]*token.Token, len(tokens))
	for i, tok := range tokens {
		if tok == nil {
			continue
		}
		resolved[i] = tok.Clone()
		if key := tok.Key(); key != "" {
			if _, dup := byKey[key]; !dup {
				byKey[key] = resolved[i]
			}
		}
	}

	for _, key := range order {
		if _, ok := graph.dependencies[key]; !ok {
			continue
		}
		tok := byKey[key]
		tok.Value = resolveValue(tok.Value, byKey, key)
	}

	// Tokens shadowed by an earlier token with the same key are not graph
	// nodes, but their references still point at resolved values.
	for i, tok := range resolved {
		if tok == nil || byKey[tok.Key()] == tok {
			continue
		}
		resolved[i].Value = resolveValue(tok.Value, byKey, tok.Key())
	}

	return resolved, nil
}

func resolveValue(value any, byKey map[string]*token.Token, owner string) any {
	switch v := value.(type) {
	case string:
		return resolveString(v, byKey, owner)
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = resolveValue(val, byKey, owner)
		}
		return m
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = resolveValue(val, byKey, owner)
		}
		return out
	default:
		return value
	}
}

func resolveString(s string, byKey map[string]*token.Token, owner string) any {
	if !strings.Contains(s, "{") {
		return s
	}

	trimmed := strings.TrimSpace(s)
	if m := refPattern.FindStringSubmatch(trimmed); m != nil && m[0] == trimmed {
		target, ok := byKey[RefKey(m[1])]
		if !ok {
			logger.Warn("%s: unresolved reference %s", owner, trimmed)
			return s
		}
		return copyValue(target.Value)
	}

	return refPattern.ReplaceAllStringFunc(s, func(ref string) string {
		target, ok := byKey[RefKey(ref[1:len(ref)-1])]
		if !ok {
			logger.Warn("%s: unresolved reference %s", owner, ref)
			return ref
		}
		switch tv := target.Value.(type) {
		case string:
			return tv
		default:
			if f, ok := num.Float(tv); ok {
				return num.Format(f)
			}
			return ref
		}
	})
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = copyValue(val)
		}
		return m
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = copyValue(val)
		}
		return out
	default:
		return value
	}
}
