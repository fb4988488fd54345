// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sciencedirect

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scidirect/pkg/types"
)

// FormatTable writes articles as a human-readable table to w.
func FormatTable(articles []types.Article, w io.Writer) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-30s  %-25s  %s\n",
		"No.", "Title", "Authors", "Journal", "Date")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, a := range articles {
		fmt.Fprintf(w, "%-4d  %-50s  %-30s  %-25s  %s\n",
			i+1,
			truncate(a.Title, 50),
			truncate(formatAuthors(a.Authors), 30),
			truncate(orNA(a.PublicationName), 25),
			orNA(a.PublicationDate))
	}

	fmt.Fprintf(w, "\n%d article(s)\n", len(articles))
}

// FormatAbstracts writes numbered abstracts beneath the table, skipping
// articles that have none.
func FormatAbstracts(articles []types.Article, w io.Writer) {
	for i, a := range articles {
		if a.Abstract == nil || *a.Abstract == "" {
			continue
		}
		fmt.Fprintf(w, "\n%d. %s\n", i+1, a.Title)
		fmt.Fprintf(w, "   %s\n", truncate(*a.Abstract, 500))
	}
}

// FormatArticle writes one article's full details to w.
func FormatArticle(a types.Article, w io.Writer) {
	fmt.Fprintf(w, "Title: %s\n", a.Title)
	if len(a.Authors) > 0 {
		fmt.Fprintf(w, "Authors: %s\n", strings.Join(a.Authors, ", "))
	}
	if a.PublicationName != nil {
		fmt.Fprintf(w, "Journal: %s\n", *a.PublicationName)
	}
	if a.PublicationDate != nil {
		fmt.Fprintf(w, "Date: %s\n", *a.PublicationDate)
	}
	if a.DOI != nil {
		fmt.Fprintf(w, "DOI: %s\n", *a.DOI)
	}
	if a.PII != nil {
		fmt.Fprintf(w, "PII: %s\n", *a.PII)
	}
	if a.URL != nil {
		fmt.Fprintf(w, "URL: %s\n", *a.URL)
	}
	if a.Abstract != nil && *a.Abstract != "" {
		fmt.Fprintf(w, "Abstract: %s\n", truncate(*a.Abstract, 2000))
	}
}

// FormatReferences writes a numbered citation list, the shape used under
// an agent answer.
func FormatReferences(articles []types.Article, w io.Writer) {
	for i, a := range articles {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, a.Title)
		if len(a.Authors) > 0 {
			fmt.Fprintf(w, "   Authors: %s\n", formatAuthors(a.Authors))
		}
		if a.PublicationName != nil {
			fmt.Fprintf(w, "   Journal: %s\n", *a.PublicationName)
		}
		if a.PublicationDate != nil {
			fmt.Fprintf(w, "   Date: %s\n", *a.PublicationDate)
		}
		if a.DOI != nil {
			fmt.Fprintf(w, "   DOI: %s\n", *a.DOI)
		}
	}
}

// FormatJSON writes articles as indented JSON to w.
func FormatJSON(articles []types.Article, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// FormatYAML writes articles as a YAML document to w.
func FormatYAML(articles []types.Article, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(articles)
}

// formatAuthors renders up to three names, then "et al.".
func formatAuthors(authors []string) string {
	switch {
	case len(authors) == 0:
		return "N/A"
	case len(authors) <= 3:
		return strings.Join(authors, ", ")
	default:
		return strings.Join(authors[:3], ", ") + " et al."
	}
}

func orNA(p *string) string {
	if p == nil || *p == "" {
		return "N/A"
	}
	return *p
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
