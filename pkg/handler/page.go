// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"

	"github.com/AccelByte/extend-landing-promo/pkg/page"

	"github.com/gorilla/mux"
)

// Page serves the document's elements.
type Page struct {
	doc *page.Document
}

func NewPage(doc *page.Document) *Page {
	return &Page{doc: doc}
}

// List returns every top-level element in registration order.
func (p *Page) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, p.doc.Snapshot())
}

// Element returns one element, or 404 when the page does not have it.
func (p *Page) Element(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	el := p.doc.GetElementByID(id)
	if el == nil {
		writeError(w, http.StatusNotFound, "element "+id+" not found")
		return
	}
	writeJSON(w, http.StatusOK, el.Snapshot())
}
