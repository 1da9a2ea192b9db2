package extract

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html><head><title>Widget Guide</title></head>
<body>
<nav><a href="/">Home</a></nav>
<main>
<h1>Widget Guide</h1>
<p>Widgets weigh <code>12kg</code> and ship worldwide.</p>
<h2>Calibration</h2>
<p>Read the <a href="/calibration">calibration manual</a> first.</p>
<ul><li>Step one</li><li>Step two</li></ul>
<script>alert("hi")</script>
</main>
<footer>Copyright</footer>
</body></html>`

func TestFromHTML(t *testing.T) {
	doc := FromHTML([]byte(page))

	if doc.Title != "Widget Guide" {
		t.Fatalf("title %q", doc.Title)
	}
	if !strings.Contains(doc.Text, "# Widget Guide") {
		t.Fatalf("h1 not converted:\n%s", doc.Text)
	}
	if !strings.Contains(doc.Text, "## Calibration") {
		t.Fatalf("h2 not converted:\n%s", doc.Text)
	}
	if !strings.Contains(doc.Text, "`12kg`") {
		t.Fatalf("inline code lost:\n%s", doc.Text)
	}
	if !strings.Contains(doc.Text, "- Step one") || !strings.Contains(doc.Text, "- Step two") {
		t.Fatalf("list items lost:\n%s", doc.Text)
	}
	if strings.Contains(doc.Text, "alert") || strings.Contains(doc.Text, "Copyright") {
		t.Fatalf("boilerplate leaked:\n%s", doc.Text)
	}
}

func TestFromHTML_AnchorsSkipNav(t *testing.T) {
	doc := FromHTML([]byte(page))

	if len(doc.Anchors) != 1 {
		t.Fatalf("anchors %+v", doc.Anchors)
	}
	a := doc.Anchors[0]
	if a.Text != "calibration manual" || a.Href != "/calibration" {
		t.Fatalf("anchor %+v", a)
	}
	if got := doc.Text[a.Position : a.Position+len(a.Text)]; got != a.Text {
		t.Fatalf("position points at %q", got)
	}
}

func TestFromHTML_FallsBackToBody(t *testing.T) {
	doc := FromHTML([]byte(`<html><body><p>Plain body text.</p></body></html>`))
	if doc.Text != "Plain body text." {
		t.Fatalf("text %q", doc.Text)
	}
}

func TestFromHTML_Garbage(t *testing.T) {
	doc := FromHTML([]byte(`not html at all`))
	if doc.Text != "not html at all" {
		t.Fatalf("text %q", doc.Text)
	}
}
