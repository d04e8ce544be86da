// Package xmlutils provides the XML tree builder and verification helpers
// used to emit and check ISO 20022 payment-initiation documents.
package xmlutils

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of an in-memory XML tree. Children keep insertion
// order, which is what gives generated documents their fixed element
// sequence.
type Element struct {
	tag      string
	attrs    []Attr
	text     string
	children []*Element
}

// NewDocument creates the root element of a new document with the given
// attributes (typically the namespace declarations).
func NewDocument(rootTag string, attrs ...Attr) *Element {
	return &Element{tag: rootTag, attrs: attrs}
}

// Child appends a new empty child element and returns it.
func (e *Element) Child(tag string) *Element {
	c := &Element{tag: tag}
	e.children = append(e.children, c)
	return c
}

// ChildText appends a new child element with text content and returns it.
func (e *Element) ChildText(tag, text string) *Element {
	c := e.Child(tag)
	c.text = text
	return c
}

// SetAttr adds an attribute to the element.
func (e *Element) SetAttr(name, value string) *Element {
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return e
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// Serialize renders the element and its subtree as a complete UTF-8 XML
// document: declaration line, no indentation, trailing newline.
func (e *Element) Serialize() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	e.writeTo(&b)
	b.WriteString("\n")
	return b.String()
}

func (e *Element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escape(a.Value))
		b.WriteByte('"')
	}
	if len(e.children) == 0 && e.text == "" {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	b.WriteString(escape(e.text))
	for _, c := range e.children {
		c.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

// escape applies XML text escaping via encoding/xml. It is used for both
// text content and attribute values.
func escape(s string) string {
	if !strings.ContainsAny(s, "<>&'\"\t\n\r") {
		return s
	}
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
