//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package document canonicalizes heterogeneous document representations into
// comparable identities and ordered text lists.
package document

import (
	"encoding/json"
	"fmt"
)

// identityTextPrefixLen is the number of leading characters of a document's
// text used as its identity when no ID field is present.
const identityTextPrefixLen = 200

// Document is a tagged variant over the two document shapes the engine
// accepts: a plain text string, or a structured record carrying optional ID
// and text fields. The zero value is an empty plain-text document.
type Document struct {
	// Plain holds the raw string form for unstructured documents.
	Plain string `json:"-"`
	// ID is the primary document identifier.
	ID string `json:"id,omitempty"`
	// DocID is an alternative identifier field.
	DocID string `json:"doc_id,omitempty"`
	// DocumentID is an alternative identifier field.
	DocumentID string `json:"document_id,omitempty"`
	// Text is the primary text field.
	Text string `json:"text,omitempty"`
	// Content is an alternative text field.
	Content string `json:"content,omitempty"`
	// PageContent is an alternative text field.
	PageContent string `json:"page_content,omitempty"`

	// structured marks records built from an object rather than a bare string.
	structured bool
	// raw retains the string form of a structured record for identity fallback.
	raw string
}

// FromText creates a plain-text document.
func FromText(text string) Document {
	return Document{Plain: text}
}

// FromFields creates a structured document from explicit ID and text fields.
func FromFields(id, text string) Document {
	return Document{ID: id, Text: text, structured: true}
}

// FromMap creates a structured document from a loosely typed record.
// Recognized keys are id, doc_id, document_id, text, content, and page_content;
// non-string values are stringified.
func FromMap(m map[string]any) Document {
	d := Document{structured: true}
	d.ID = stringField(m, "id")
	d.DocID = stringField(m, "doc_id")
	d.DocumentID = stringField(m, "document_id")
	d.Text = stringField(m, "text")
	d.Content = stringField(m, "content")
	d.PageContent = stringField(m, "page_content")
	d.raw = fmt.Sprint(m)
	return d
}

// FromAny creates a document from an arbitrary value: strings become
// plain-text documents, maps become structured records, and anything else
// keeps its string form as identity.
func FromAny(v any) Document {
	switch t := v.(type) {
	case string:
		return FromText(t)
	case map[string]any:
		return FromMap(t)
	case Document:
		return t
	default:
		return FromText(fmt.Sprint(v))
	}
}

// stringField extracts a string-valued field, stringifying non-string values.
func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// UnmarshalJSON accepts either a JSON string or an object.
func (d *Document) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = FromText(s)
		return nil
	}
	type alias Document
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = Document(a)
	d.structured = true
	d.raw = string(data)
	return nil
}

// MarshalJSON emits plain-text documents as JSON strings and structured
// documents as objects.
func (d Document) MarshalJSON() ([]byte, error) {
	if !d.structured {
		return json.Marshal(d.Plain)
	}
	type alias Document
	return json.Marshal(alias(d))
}

// IsStructured reports whether the document was built from a structured record.
func (d Document) IsStructured() bool {
	return d.structured
}

// Identity returns the comparable identity of the document: the first present
// ID field, else the first 200 characters of the first present text field,
// else the string form of the whole record.
func (d Document) Identity() string {
	if !d.structured {
		return d.Plain
	}
	for _, id := range []string{d.ID, d.DocID, d.DocumentID} {
		if id != "" {
			return id
		}
	}
	if text := d.text(); text != "" {
		runes := []rune(text)
		if len(runes) > identityTextPrefixLen {
			return string(runes[:identityTextPrefixLen])
		}
		return text
	}
	if d.raw != "" {
		return d.raw
	}
	return fmt.Sprintf("%+v", struct {
		ID, DocID, DocumentID, Text, Content, PageContent string
	}{d.ID, d.DocID, d.DocumentID, d.Text, d.Content, d.PageContent})
}

// text returns the first present text field of a structured document.
func (d Document) text() string {
	for _, text := range []string{d.Text, d.Content, d.PageContent} {
		if text != "" {
			return text
		}
	}
	return ""
}

// IdentitySet returns the set of document identities.
// Nil or empty input yields an empty set, never an error.
func IdentitySet(docs []Document) map[string]struct{} {
	set := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		set[doc.Identity()] = struct{}{}
	}
	return set
}

// IdentityList returns document identities preserving input order, required
// wherever rank matters.
func IdentityList(docs []Document) []string {
	list := make([]string, 0, len(docs))
	for _, doc := range docs {
		list = append(list, doc.Identity())
	}
	return list
}

// Texts returns the displayable text of each document in order, skipping
// structured documents with no resolvable text.
func Texts(docs []Document) []string {
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if !doc.structured {
			texts = append(texts, doc.Plain)
			continue
		}
		if text := doc.text(); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}
