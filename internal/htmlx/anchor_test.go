package htmlx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// collect drains an anchor sequence into a slice for comparison.
func collect(doc string) []Anchor {
	var anchors []Anchor
	for a := range Anchors(doc) {
		anchors = append(anchors, a)
	}
	return anchors
}

// TestAnchors verifies anchor extraction over representative documents.
func TestAnchors(t *testing.T) {
	t.Parallel()

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()
		doc := `<p><a href="/first">one</a> text <a href="/second">two</a></p>`
		got := collect(doc)
		want := []Anchor{
			{Href: "/first", Inner: "one"},
			{Href: "/second", Inner: "two"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("anchors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tag and attribute names are case-insensitive", func(t *testing.T) {
		t.Parallel()
		doc := `<A HREF="/dl/runtime.tgz">Runtime</A>`
		got := collect(doc)
		want := []Anchor{{Href: "/dl/runtime.tgz", Inner: "Runtime"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("anchors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("attributes may precede or follow href", func(t *testing.T) {
		t.Parallel()
		doc := `<a class="dl" href="/a" rel="nofollow">a</a><a href="/b" class="dl">b</a>`
		got := collect(doc)
		want := []Anchor{
			{Href: "/a", Inner: "a"},
			{Href: "/b", Inner: "b"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("anchors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("inner content may span lines and contain markup", func(t *testing.T) {
		t.Parallel()
		doc := "<a href=\"/dl\">\n  <strong>musl</strong>\n  runtime\n</a>"
		got := collect(doc)
		if len(got) != 1 {
			t.Fatalf("expected 1 anchor, got %d", len(got))
		}
		if got[0].Inner != "\n  <strong>musl</strong>\n  runtime\n" {
			t.Errorf("inner content not captured verbatim: %q", got[0].Inner)
		}
	})

	t.Run("unclosed anchor is skipped", func(t *testing.T) {
		t.Parallel()
		doc := `<a href="/broken">no closing tag`
		if got := collect(doc); got != nil {
			t.Errorf("expected no anchors, got %v", got)
		}
	})

	t.Run("anchor without href is skipped", func(t *testing.T) {
		t.Parallel()
		doc := `<a name="top">bookmark</a><a href="/real">real</a>`
		got := collect(doc)
		want := []Anchor{{Href: "/real", Inner: "real"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("anchors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty document yields nothing", func(t *testing.T) {
		t.Parallel()
		if got := collect(""); got != nil {
			t.Errorf("expected no anchors, got %v", got)
		}
	})
}

// TestAnchorsRestartable verifies the sequence can be ranged over repeatedly.
func TestAnchorsRestartable(t *testing.T) {
	t.Parallel()

	doc := `<a href="/a">a</a><a href="/b">b</a>`
	seq := Anchors(doc)

	first := func() []Anchor {
		var out []Anchor
		for a := range seq {
			out = append(out, a)
		}
		return out
	}

	if diff := cmp.Diff(first(), first()); diff != "" {
		t.Errorf("second pass differs from first:\n%s", diff)
	}
}

// TestAnchorsEarlyStop verifies that breaking out of the range does not
// consume the rest of the document.
func TestAnchorsEarlyStop(t *testing.T) {
	t.Parallel()

	doc := `<a href="/a">a</a><a href="/b">b</a><a href="/c">c</a>`
	var got []Anchor
	for a := range Anchors(doc) {
		got = append(got, a)
		if len(got) == 1 {
			break
		}
	}
	want := []Anchor{{Href: "/a", Inner: "a"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("anchors mismatch (-want +got):\n%s", diff)
	}
}
