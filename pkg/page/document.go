// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package page models the landing page as a set of addressable elements.
package page

import (
	"sync"
)

// Element IDs the page behaviors look up.
const (
	InlineTimerID     = "offer-timer"
	FixedTimerID      = "fixed-timer-display"
	FixedBannerID     = "fixedCtaBanner"
	PopupContainerID  = "socialProofContainer"
	FooterYearID      = "year"
	BannerHiddenClass = "cta-hidden"
	BannerShownClass  = "cta-visible"
)

// Document holds the page's top-level elements by ID.
type Document struct {
	mu       sync.RWMutex
	order    []string
	elements map[string]*Element
}

func NewDocument() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// Register adds a top-level element. Registering an existing ID returns
// the existing element unchanged.
func (d *Document) Register(id string, classes ...string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.elements[id]; ok {
		return e
	}
	e := NewElement(id, classes...)
	d.elements[id] = e
	d.order = append(d.order, id)
	return e
}

// GetElementByID returns nil when the page has no such element.
func (d *Document) GetElementByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.elements[id]
}

// Snapshot copies every top-level element in registration order.
func (d *Document) Snapshot() []ElementSnapshot {
	d.mu.RLock()
	elems := make([]*Element, 0, len(d.order))
	for _, id := range d.order {
		elems = append(elems, d.elements[id])
	}
	d.mu.RUnlock()

	out := make([]ElementSnapshot, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.Snapshot())
	}
	return out
}
