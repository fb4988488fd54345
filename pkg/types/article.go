// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the scidirect client
// and research agent.
package types

// NoTitle is the placeholder title used when the provider returns an
// entry without dc:title. The record is kept rather than dropped; this
// mirrors the upstream API's occasional omission of the field.
const NoTitle = "No title"

// Article is one ScienceDirect article normalized from either a search
// entry or a full-text retrieval response. Instances are immutable value
// objects: construct once, never mutate.
//
// Optional fields are pointers. A nil pointer means the provider did not
// return the field, which is distinct from a present-but-empty string.
type Article struct {
	// Title is the article title, or NoTitle when the provider omitted it.
	Title string `json:"title" yaml:"title"`

	// Authors lists author names in provider order. Blank names are dropped.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the teaser or description text.
	Abstract *string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// DOI is the Digital Object Identifier.
	DOI *string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// PII is the Publisher Item Identifier, the provider's per-article ID.
	PII *string `json:"pii,omitempty" yaml:"pii,omitempty"`

	// PublicationName is the journal or book title.
	PublicationName *string `json:"publication_name,omitempty" yaml:"publication_name,omitempty"`

	// PublicationDate is the cover date as free-form text from the provider.
	PublicationDate *string `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`

	// URL links to the article on the provider's site.
	URL *string `json:"url,omitempty" yaml:"url,omitempty"`
}
