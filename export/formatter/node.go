/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrPathConflict is returned when two entries claim the same key in a Node
// tree.
var ErrPathConflict = errors.New("path conflict")

// Node is a JSON object that remembers key insertion order.
type Node struct {
	keys   []string
	values map[string]any
}

// NewNode returns an empty Node.
func NewNode() *Node {
	return &Node{values: make(map[string]any)}
}

// Set stores value under key, keeping the key's original position when it
// already exists.
func (n *Node) Set(key string, value any) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Len returns the number of keys.
func (n *Node) Len() int {
	return len(n.keys)
}

// Insert stores leaf at path, creating intermediate nodes. It fails when the
// path runs through an existing leaf or ends on an existing key. A Node
// carrying a $value key counts as a leaf.
func (n *Node) Insert(path []string, leaf any) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrPathConflict)
	}
	cur := n
	for i, key := range path[:len(path)-1] {
		existing, ok := cur.values[key]
		if !ok {
			child := NewNode()
			cur.Set(key, child)
			cur = child
			continue
		}
		child, isNode := existing.(*Node)
		if !isNode || child.isLeaf() {
			return fmt.Errorf("%w: %v is a leaf", ErrPathConflict, path[:i+1])
		}
		cur = child
	}
	last := path[len(path)-1]
	if _, exists := cur.values[last]; exists {
		return fmt.Errorf("%w: %v already exists", ErrPathConflict, path)
	}
	cur.Set(last, leaf)
	return nil
}

func (n *Node) isLeaf() bool {
	_, ok := n.values["$value"]
	return ok
}

// MarshalJSON writes the keys in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, n.values[key]); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
