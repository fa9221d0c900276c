package service

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns problem descriptions into safe HTML and strips markup from
// user comments.
type Renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

// Markdown renders src. On a rendering failure the escaped source is returned.
func (r *Renderer) Markdown(src string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return r.strict.Sanitize(src)
	}
	return r.ugc.Sanitize(buf.String())
}

// maxDecodePasses bounds PlainText on inputs that keep decoding into new markup.
const maxDecodePasses = 8

// PlainText removes every HTML element and trims surrounding whitespace.
// Entities are decoded so clients can escape on display, and the result is
// sanitized again until stable so encoded markup cannot come back to life.
func (r *Renderer) PlainText(s string) string {
	for i := 0; i < maxDecodePasses; i++ {
		next := html.UnescapeString(r.strict.Sanitize(s))
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
	// still changing: keep the escaped form
	return strings.TrimSpace(r.strict.Sanitize(s))
}
