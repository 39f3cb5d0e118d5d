package xmltree

import (
	"errors"
	"testing"
)

func TestParseBasic(t *testing.T) {
	root, err := Parse([]byte(`<?xml version="1.0"?>
<book id="7" lang="en">
  <title>Go</title>
  <title>Second</title>
  <year>2015</year>
</book>`))
	if err != nil {
		t.Fatal(err)
	}
	if root.Tag != "book" {
		t.Fatalf("root tag %q", root.Tag)
	}
	if len(root.Attrs) != 2 || root.Attrs[0].Name != "id" || root.Attrs[1].Name != "lang" {
		t.Errorf("attrs out of order: %v", root.Attrs)
	}
	elems := root.Elems()
	if len(elems) != 3 {
		t.Fatalf("got %d element children", len(elems))
	}
	if elems[0].Tag != "title" || elems[0].Text() != "Go" {
		t.Errorf("first child = %s %q", elems[0].Tag, elems[0].Text())
	}
	if elems[2].Text() != "2015" {
		t.Errorf("year text %q", elems[2].Text())
	}
}

func TestParseMixedContent(t *testing.T) {
	root, err := Parse([]byte(`<p>before<b>bold</b>after</p>`))
	if err != nil {
		t.Fatal(err)
	}
	if root.Text() != "beforeafter" {
		t.Errorf("text %q", root.Text())
	}
	if len(root.Elems()) != 1 {
		t.Errorf("elems %v", root.Elems())
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"<a>",
		"<a></b>",
		"<a/><b/>",
		"stray<a/>",
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrMarkup) {
			t.Errorf("Parse(%q): got %v, want ErrMarkup", in, err)
		}
	}
}

func TestParseEntities(t *testing.T) {
	root, err := Parse([]byte(`<v>a &lt; b &amp; c</v>`))
	if err != nil {
		t.Fatal(err)
	}
	if root.Text() != "a < b & c" {
		t.Errorf("text %q", root.Text())
	}
}
