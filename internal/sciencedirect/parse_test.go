// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sciencedirect

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/pdiddy/scidirect/pkg/types"
)

// --- Author extraction ---

func TestExtractAuthors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"bare string", `"Marie Curie"`, []string{"Marie Curie"}},
		{"object with text field", `{"$": "Alan Turing"}`, []string{"Alan Turing"}},
		{"list of strings", `["A. Lovelace", "C. Babbage"]`, []string{"A. Lovelace", "C. Babbage"}},
		{
			"mixed list preserves order",
			`[{"$": "First Author"}, "Second Author", {"$": "Third Author"}]`,
			[]string{"First Author", "Second Author", "Third Author"},
		},
		{"blank entries dropped", `["", "Real Author", {"$": "  "}]`, []string{"Real Author"}},
		{"empty string", `""`, nil},
		{"object without text field", `{"@id": "7"}`, nil},
		{"null", `null`, nil},
		{"absent", ``, nil},
		{"empty list", `[]`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAuthors(json.RawMessage(tt.raw))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractAuthors(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// --- Search envelope ---

// searchFixture has two entries: one with a string creator, one with an
// object-list creator.
const searchFixture = `{
  "search-results": {
    "entry": [
      {
        "dc:title": "Deep learning for protein folding",
        "dc:creator": "J. Jumper",
        "prism:teaser": "A short teaser.",
        "prism:doi": "10.1016/j.example.2024.01.001",
        "pii": "S0000000000000001",
        "prism:publicationName": "Journal of Computational Biology",
        "prism:coverDate": "2024-03-15",
        "link": [{"@href": "https://www.sciencedirect.com/science/article/pii/S0000000000000001"}]
      },
      {
        "dc:title": "Attention in sequence models",
        "dc:creator": [{"$": "A. Vaswani"}, {"$": "N. Shazeer"}],
        "dc:description": "Fallback description text.",
        "pii": "S0000000000000002"
      }
    ]
  }
}`

func TestParseSearchResultsFixture(t *testing.T) {
	articles, err := parseSearchResults([]byte(searchFixture))
	if err != nil {
		t.Fatalf("parseSearchResults: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	first := articles[0]
	if first.Title != "Deep learning for protein folding" {
		t.Errorf("title = %q", first.Title)
	}
	if !reflect.DeepEqual(first.Authors, []string{"J. Jumper"}) {
		t.Errorf("authors = %v", first.Authors)
	}
	if first.Abstract == nil || *first.Abstract != "A short teaser." {
		t.Errorf("abstract = %v, want teaser", first.Abstract)
	}
	if first.DOI == nil || *first.DOI != "10.1016/j.example.2024.01.001" {
		t.Errorf("doi = %v", first.DOI)
	}
	if first.PII == nil || *first.PII != "S0000000000000001" {
		t.Errorf("pii = %v", first.PII)
	}
	if first.PublicationName == nil || *first.PublicationName != "Journal of Computational Biology" {
		t.Errorf("publication name = %v", first.PublicationName)
	}
	if first.PublicationDate == nil || *first.PublicationDate != "2024-03-15" {
		t.Errorf("publication date = %v", first.PublicationDate)
	}
	if first.URL == nil || *first.URL != "https://www.sciencedirect.com/science/article/pii/S0000000000000001" {
		t.Errorf("url = %v", first.URL)
	}

	second := articles[1]
	if second.Title != "Attention in sequence models" {
		t.Errorf("title = %q", second.Title)
	}
	if !reflect.DeepEqual(second.Authors, []string{"A. Vaswani", "N. Shazeer"}) {
		t.Errorf("authors = %v", second.Authors)
	}
	// No teaser, so the abstract falls back to dc:description.
	if second.Abstract == nil || *second.Abstract != "Fallback description text." {
		t.Errorf("abstract = %v, want description fallback", second.Abstract)
	}
	if second.DOI != nil {
		t.Errorf("doi = %v, want absent", second.DOI)
	}
	if second.URL != nil {
		t.Errorf("url = %v, want absent", second.URL)
	}
}

func TestParseSearchResultsDeterministic(t *testing.T) {
	a, err := parseSearchResults([]byte(searchFixture))
	if err != nil {
		t.Fatalf("parseSearchResults: %v", err)
	}
	b, err := parseSearchResults([]byte(searchFixture))
	if err != nil {
		t.Fatalf("parseSearchResults: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same input produced different output")
	}
}

func TestParseSearchResultsEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty entry list", `{"search-results": {"entry": []}}`},
		{"missing entry key", `{"search-results": {}}`},
		{"missing envelope", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles, err := parseSearchResults([]byte(tt.data))
			if err != nil {
				t.Fatalf("parseSearchResults: %v", err)
			}
			if articles == nil || len(articles) != 0 {
				t.Errorf("got %v, want empty slice", articles)
			}
		})
	}
}

func TestParseSearchResultsMissingTitle(t *testing.T) {
	data := `{"search-results": {"entry": [{"pii": "S1"}]}}`
	articles, err := parseSearchResults([]byte(data))
	if err != nil {
		t.Fatalf("parseSearchResults: %v", err)
	}
	if articles[0].Title != types.NoTitle {
		t.Errorf("title = %q, want %q", articles[0].Title, types.NoTitle)
	}
}

func TestParseSearchResultsAbsentVersusEmpty(t *testing.T) {
	data := `{"search-results": {"entry": [
		{"dc:title": "A", "prism:doi": ""},
		{"dc:title": "B"}
	]}}`
	articles, err := parseSearchResults([]byte(data))
	if err != nil {
		t.Fatalf("parseSearchResults: %v", err)
	}
	if articles[0].DOI == nil || *articles[0].DOI != "" {
		t.Errorf("present-but-empty doi = %v, want pointer to empty string", articles[0].DOI)
	}
	if articles[1].DOI != nil {
		t.Errorf("absent doi = %v, want nil", articles[1].DOI)
	}
}

func TestParseSearchResultsInvalidJSON(t *testing.T) {
	if _, err := parseSearchResults([]byte(`{"search-results"`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

// --- Article envelope ---

func TestParseArticleRawTextAbstract(t *testing.T) {
	data := `{
	  "full-text-retrieval-response": {
	    "coredata": {
	      "dc:title": "Quantum error correction",
	      "dc:creator": {"$": "P. Shor"},
	      "dc:description": "Coredata description.",
	      "pii": "S0000000000000003",
	      "prism:doi": "10.1016/j.example.2024.02.002"
	    },
	    "originalText": {
	      "xocs:doc": {"xocs:serial-item": {"xocs:raw-text": "Full raw abstract text."}}
	    }
	  }
	}`
	article, err := parseArticle([]byte(data))
	if err != nil {
		t.Fatalf("parseArticle: %v", err)
	}
	if article.Title != "Quantum error correction" {
		t.Errorf("title = %q", article.Title)
	}
	if !reflect.DeepEqual(article.Authors, []string{"P. Shor"}) {
		t.Errorf("authors = %v", article.Authors)
	}
	if article.Abstract == nil || *article.Abstract != "Full raw abstract text." {
		t.Errorf("abstract = %v, want raw text", article.Abstract)
	}
}

func TestParseArticleAbstractFallbacks(t *testing.T) {
	tests := []struct {
		name         string
		originalText string
		want         string
	}{
		{"originalText is a string", `"plain string, not an object"`, "Coredata description."},
		{"originalText missing raw text", `{"xocs:doc": {}}`, "Coredata description."},
		{"originalText absent", ``, "Coredata description."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"full-text-retrieval-response": {"coredata": {"dc:title": "T", "dc:description": "Coredata description."}`
			if tt.originalText != "" {
				body += `, "originalText": ` + tt.originalText
			}
			body += `}}`

			article, err := parseArticle([]byte(body))
			if err != nil {
				t.Fatalf("parseArticle: %v", err)
			}
			if article.Abstract == nil || *article.Abstract != tt.want {
				t.Errorf("abstract = %v, want %q", article.Abstract, tt.want)
			}
		})
	}
}

func TestParseArticleMixedCreatorList(t *testing.T) {
	data := `{"full-text-retrieval-response": {"coredata": {
	  "dc:title": "T",
	  "dc:creator": [{"$": "One"}, "Two", {"$": ""}]
	}}}`
	article, err := parseArticle([]byte(data))
	if err != nil {
		t.Fatalf("parseArticle: %v", err)
	}
	if !reflect.DeepEqual(article.Authors, []string{"One", "Two"}) {
		t.Errorf("authors = %v, want [One Two]", article.Authors)
	}
}
