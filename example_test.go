package ljson_test

import (
	"testing"

	"github.com/nkoval/ljson"
)

func TestUsage(t *testing.T) {
	// Parse turns JSON text into a document tree.
	doc, err := ljson.ParseString(`
	{
		"name": "ljson",
		"stable": true,
		"tags": ["codec", "tree", "mutable"],
		"meta": {"version": 1}
	}
	`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if doc.Kind() != ljson.Object {
		t.Fatal("expected an object at the root")
	}

	// Look up members by key.
	name, err := doc.GetValueByKey([]byte("name")).StringValue()
	if err != nil || string(name) != "ljson" {
		t.Fatalf("unexpected name: %q, %v", name, err)
	}

	// Arrays are inspected by index.
	tags := doc.GetValueByKey([]byte("tags"))
	if tags.ArraySize() != 3 {
		t.Fatal("expected three tags")
	}
	first, _ := tags.GetArrayElement(0).StringValue()
	if string(first) != "codec" {
		t.Fatalf("unexpected first tag: %q", first)
	}

	// The tree is mutable: push a new tag and bump the version in place.
	var extra ljson.Value
	extra.SetString([]byte("idiomatic"))
	tags.PushBack(&extra)

	meta := doc.GetValueByKey([]byte("meta"))
	var two ljson.Value
	two.SetNumber(2)
	meta.SetValueByKey([]byte("version"), &two)

	// Stringify renders the tree back to compact JSON text.
	out := doc.Stringify()
	reparsed, err := ljson.Parse(out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if reparsed.GetValueByKey([]byte("tags")).ArraySize() != 4 {
		t.Fatal("expected the pushed tag to survive a stringify/parse round trip")
	}
}
