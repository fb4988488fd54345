// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sciencedirect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/scidirect/pkg/types"
)

// ScienceDirect wire structures. The envelope key names are dictated by
// the provider and treated as opaque input; they are not a contract this
// package defines.
type searchEnvelope struct {
	Results searchResults `json:"search-results"`
}

type searchResults struct {
	Entries []searchEntry `json:"entry"`
}

// searchEntry is one entry from the search envelope. The article
// endpoint's coredata object carries the same field set (minus the
// teaser), so both paths decode into this struct.
type searchEntry struct {
	Title           *string         `json:"dc:title"`
	Creator         json.RawMessage `json:"dc:creator"`
	Teaser          *string         `json:"prism:teaser"`
	Description     *string         `json:"dc:description"`
	DOI             *string         `json:"prism:doi"`
	PII             *string         `json:"pii"`
	PublicationName *string         `json:"prism:publicationName"`
	CoverDate       *string         `json:"prism:coverDate"`
	Links           []entryLink     `json:"link"`
}

type entryLink struct {
	Href string `json:"@href"`
}

type articleEnvelope struct {
	Response fullTextResponse `json:"full-text-retrieval-response"`
}

type fullTextResponse struct {
	Coredata searchEntry `json:"coredata"`
	// OriginalText is an object in full responses but a bare string in
	// abbreviated ones, so it stays raw until inspected.
	OriginalText json.RawMessage `json:"originalText"`
}

type originalText struct {
	Doc struct {
		SerialItem struct {
			RawText string `json:"xocs:raw-text"`
		} `json:"xocs:serial-item"`
	} `json:"xocs:doc"`
}

// creatorObject is the object shape of dc:creator; "$" holds the name.
type creatorObject struct {
	Text string `json:"$"`
}

// parseSearchResults converts a search-results envelope into zero or
// more articles. Zero entries is a valid empty result, not an error.
func parseSearchResults(data []byte) ([]types.Article, error) {
	var env searchEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	articles := make([]types.Article, 0, len(env.Results.Entries))
	for _, entry := range env.Results.Entries {
		abstract := entry.Teaser
		if abstract == nil {
			abstract = entry.Description
		}
		articles = append(articles, entryToArticle(entry, abstract))
	}
	return articles, nil
}

// parseArticle converts a full-text-retrieval-response envelope into one
// article.
func parseArticle(data []byte) (types.Article, error) {
	var env articleEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return types.Article{}, fmt.Errorf("parsing article response: %w", err)
	}

	core := env.Response.Coredata
	return entryToArticle(core, articleAbstract(env.Response.OriginalText, core)), nil
}

// entryToArticle maps one wire entry to an Article. The abstract is
// resolved by the caller because the two envelopes source it from
// different places. An absent title becomes the NoTitle sentinel.
func entryToArticle(e searchEntry, abstract *string) types.Article {
	a := types.Article{
		Title:           types.NoTitle,
		Authors:         extractAuthors(e.Creator),
		Abstract:        abstract,
		DOI:             e.DOI,
		PII:             e.PII,
		PublicationName: e.PublicationName,
		PublicationDate: e.CoverDate,
	}
	if e.Title != nil {
		a.Title = *e.Title
	}
	if len(e.Links) > 0 && e.Links[0].Href != "" {
		href := e.Links[0].Href
		a.URL = &href
	}
	return a
}

// articleAbstract resolves the abstract for a full-text response: the
// raw text buried under originalText when that field is an object and
// non-empty, falling back to dc:description.
func articleAbstract(orig json.RawMessage, core searchEntry) *string {
	var ot originalText
	if len(orig) > 0 && json.Unmarshal(orig, &ot) == nil {
		if txt := ot.Doc.SerialItem.RawText; txt != "" {
			return &txt
		}
	}
	return core.Description
}

// extractAuthors normalizes the polymorphic dc:creator field. The
// provider returns a bare string, an object with a "$" text field, or a
// list mixing both. Order is preserved; blank names are dropped.
func extractAuthors(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return appendAuthor(nil, s)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		var authors []string
		for _, item := range list {
			var name string
			if err := json.Unmarshal(item, &name); err == nil {
				authors = appendAuthor(authors, name)
				continue
			}
			var obj creatorObject
			if err := json.Unmarshal(item, &obj); err == nil {
				authors = appendAuthor(authors, obj.Text)
			}
		}
		return authors
	}

	var obj creatorObject
	if err := json.Unmarshal(raw, &obj); err == nil {
		return appendAuthor(nil, obj.Text)
	}

	return nil
}

// appendAuthor adds name to authors unless it is empty or whitespace.
func appendAuthor(authors []string, name string) []string {
	if strings.TrimSpace(name) == "" {
		return authors
	}
	return append(authors, name)
}
