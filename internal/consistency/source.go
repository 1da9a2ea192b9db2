package consistency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hyperifyio/contentlint/internal/triple"
)

// SourceError is the typed failure surface of a corpus source. Carrying the
// operation and status lets the validator log a useful reason while still
// failing open.
type SourceError struct {
	Op     string
	Status int
	Err    error
}

func (e *SourceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("corpus %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("corpus %s: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// HTTPSource fetches sibling triples from a document store over a small
// JSON API: GET {base}/collections/{id}/triples?exclude={docID} returning
// an array of raw triples each carrying a sourceDocumentId.
type HTTPSource struct {
	BaseURL    string
	APIKey     string // optional bearer token
	HTTPClient *http.Client
}

type wireTriple struct {
	triple.Raw
	SourceDocumentID string `json:"sourceDocumentId"`
}

// FetchSiblingTriples implements report.TripleSource. An empty collection
// is a valid empty answer, not an error.
func (s *HTTPSource) FetchSiblingTriples(ctx context.Context, collectionID, excludeDocumentID string) ([]triple.Sibling, error) {
	if strings.TrimSpace(s.BaseURL) == "" {
		return nil, &SourceError{Op: "fetch", Err: fmt.Errorf("missing corpus base url")}
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return nil, &SourceError{Op: "fetch", Err: err}
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/collections/" + url.PathEscape(collectionID) + "/triples"
	q := u.Query()
	if excludeDocumentID != "" {
		q.Set("exclude", excludeDocumentID)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &SourceError{Op: "fetch", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &SourceError{Op: "fetch", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		// Unknown collection reads as an empty one.
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{Op: "fetch", Status: resp.StatusCode}
	}

	var raw []wireTriple
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &SourceError{Op: "decode", Err: err}
	}
	out := make([]triple.Sibling, 0, len(raw))
	for _, w := range raw {
		ts := triple.Ingest([]triple.Raw{w.Raw})
		if len(ts) == 0 {
			continue
		}
		out = append(out, triple.Sibling{Triple: ts[0], SourceDocumentID: w.SourceDocumentID})
	}
	return out, nil
}
