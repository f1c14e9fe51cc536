// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package page

import (
	"sort"
	"sync"
)

// Element is a DOM-like node: text content, a class set and children.
// It is written from the event loop and read concurrently by the API.
type Element struct {
	id string

	mu       sync.RWMutex
	text     string
	classes  map[string]struct{}
	children []*Element
}

// NewElement creates a detached element.
func NewElement(id string, classes ...string) *Element {
	e := &Element{
		id:      id,
		classes: make(map[string]struct{}, len(classes)),
	}
	for _, c := range classes {
		e.classes[c] = struct{}{}
	}
	return e
}

func (e *Element) ID() string {
	return e.id
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

func (e *Element) AddClass(classes ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range classes {
		e.classes[c] = struct{}{}
	}
}

func (e *Element) RemoveClass(classes ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range classes {
		delete(e.classes, c)
	}
}

func (e *Element) HasClass(class string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.classes[class]
	return ok
}

// Classes returns the class set sorted by name.
func (e *Element) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// AppendChild adds child as the last child.
func (e *Element) AppendChild(child *Element) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.children = append(e.children, child)
}

// RemoveChild detaches child. It reports whether child was attached.
func (e *Element) RemoveChild(child *Element) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Element) Contains(child *Element) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, c := range e.children {
		if c == child {
			return true
		}
	}
	return false
}

func (e *Element) Children() []*Element {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ElementSnapshot is a point-in-time copy of an element tree.
type ElementSnapshot struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Classes  []string          `json:"classes"`
	Children []ElementSnapshot `json:"children,omitempty"`
}

// Snapshot copies the element and its descendants.
func (e *Element) Snapshot() ElementSnapshot {
	snap := ElementSnapshot{
		ID:      e.id,
		Text:    e.Text(),
		Classes: e.Classes(),
	}
	for _, c := range e.Children() {
		snap.Children = append(snap.Children, c.Snapshot())
	}
	return snap
}
