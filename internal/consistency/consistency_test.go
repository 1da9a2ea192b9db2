package consistency

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/contentlint/internal/report"
	"github.com/hyperifyio/contentlint/internal/triple"
)

type fakeSource struct {
	siblings []triple.Sibling
	err      error
	calls    int
}

func (f *fakeSource) FetchSiblingTriples(_ context.Context, _, _ string) ([]triple.Sibling, error) {
	f.calls++
	return f.siblings, f.err
}

func weightTriple(value string) triple.Triple {
	return triple.Triple{
		Subject:   triple.Subject{Label: "Acme Widget"},
		Predicate: triple.Predicate{Relation: "weight", Category: triple.CategoryUnique},
		Object:    triple.Object{Value: value},
	}
}

func sibling(value, docID string) triple.Sibling {
	return triple.Sibling{Triple: weightTriple(value), SourceDocumentID: docID}
}

func testContext(src report.TripleSource, triples ...triple.Triple) *report.Context {
	return &report.Context{
		Language:   "en",
		Stage:      report.StageDocument,
		Collection: "col-1",
		DocumentID: "doc-1",
		Triples:    triples,
		Corpus:     src,
	}
}

func TestCheck_NumericWithinTolerance(t *testing.T) {
	src := &fakeSource{siblings: []triple.Sibling{sibling("324", "doc-2")}}
	v := &Validator{Tolerance: 0.05, Log: zerolog.Nop()}

	out, err := v.Check(context.Background(), "", testContext(src, weightTriple("330")))
	require.NoError(t, err)
	assert.Empty(t, out, "330 vs 324 is inside the 5%% band")
}

func TestCheck_NumericContradiction(t *testing.T) {
	src := &fakeSource{siblings: []triple.Sibling{sibling("300", "doc-2")}}
	v := &Validator{Tolerance: 0.05, Log: zerolog.Nop()}

	out, err := v.Check(context.Background(), "", testContext(src, weightTriple("330")))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, RuleID, out[0].RuleID)
	assert.Equal(t, report.SeverityError, out[0].Severity)
	assert.Contains(t, out[0].Text, "doc-2")
	assert.Contains(t, out[0].Text, `"330"`)
	assert.Contains(t, out[0].Text, `"300"`)
}

func TestCheck_TextValuesNormalized(t *testing.T) {
	src := &fakeSource{siblings: []triple.Sibling{sibling("  Steel   Blue ", "doc-2")}}
	v := &Validator{Tolerance: 0.05, Log: zerolog.Nop()}

	out, err := v.Check(context.Background(), "", testContext(src, weightTriple("steel blue")))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheck_FetchErrorFailsOpen(t *testing.T) {
	src := &fakeSource{err: errors.New("store down")}
	v := &Validator{Tolerance: 0.05, Log: zerolog.Nop()}

	out, err := v.Check(context.Background(), "", testContext(src, weightTriple("330")))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheck_SkipsWithoutCorpusOrCollection(t *testing.T) {
	v := &Validator{Tolerance: 0.05, Log: zerolog.Nop()}

	vc := testContext(nil, weightTriple("330"))
	out, err := v.Check(context.Background(), "", vc)
	require.NoError(t, err)
	assert.Empty(t, out)

	src := &fakeSource{}
	vc = testContext(src, weightTriple("330"))
	vc.Collection = ""
	_, err = v.Check(context.Background(), "", vc)
	require.NoError(t, err)
	assert.Zero(t, src.calls, "no collection means no fetch")
}

func TestCheck_DifferentRelationsNeverCompared(t *testing.T) {
	other := weightTriple("330")
	other.Predicate.Relation = "height"
	src := &fakeSource{siblings: []triple.Sibling{{Triple: other, SourceDocumentID: "doc-2"}}}
	v := &Validator{Tolerance: 0.05, Log: zerolog.Nop()}

	out, err := v.Check(context.Background(), "", testContext(src, weightTriple("12")))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestValuesAgree(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"330", "324", true},
		{"330", "300", false},
		{"12 kg", "12.5 kg", true},
		{"€ 1200", "1,200", false}, // "1,200" reads as 1.200
		{"1,5", "1.5", true},
		{"steel blue", "Steel Blue", true},
		{"steel blue", "navy blue", false},
		{"twelve", "12", false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, valuesAgree(c.a, c.b, 0.05), "%q vs %q", c.a, c.b)
	}
}

func TestHTTPSource_FetchSiblingTriples(t *testing.T) {
	var gotPath, gotAuth, gotExclude string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotExclude = r.URL.Query().Get("exclude")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"subject":          map[string]any{"label": "Acme Widget"},
				"predicate":        map[string]any{"relation": "weight", "category": "UNIQUE"},
				"object":           map[string]any{"value": "324"},
				"sourceDocumentId": "doc-2",
			},
			{
				// no subject label: dropped during ingestion
				"predicate":        map[string]any{"relation": "weight"},
				"object":           map[string]any{"value": "1"},
				"sourceDocumentId": "doc-3",
			},
		})
	}))
	defer srv.Close()

	src := &HTTPSource{BaseURL: srv.URL, APIKey: "secret"}
	out, err := src.FetchSiblingTriples(context.Background(), "col-1", "doc-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "doc-2", out[0].SourceDocumentID)
	assert.Equal(t, triple.CategoryUnique, out[0].Predicate.Category)
	assert.Equal(t, "/collections/col-1/triples", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "doc-1", gotExclude)
}

func TestHTTPSource_NotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := &HTTPSource{BaseURL: srv.URL}
	out, err := src.FetchSiblingTriples(context.Background(), "missing", "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHTTPSource_ServerErrorTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := &HTTPSource{BaseURL: srv.URL}
	_, err := src.FetchSiblingTriples(context.Background(), "col-1", "")
	var se *SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Status)
}
