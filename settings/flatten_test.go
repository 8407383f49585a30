package settings

import (
	"reflect"
	"testing"
)

func TestFlattenReconstructRoundTrip(t *testing.T) {
	tree := map[string]interface{}{
		"contact": map[string]interface{}{
			"email": "hello@vaahan.in",
			"phone": "+91 98765 43210",
		},
		"theme": map[string]interface{}{
			"dark_mode": true,
			"colors": map[string]interface{}{
				"primary":   "#0EA5E9",
				"secondary": "#0F172A",
			},
		},
		"apps": map[string]interface{}{
			"platforms": []interface{}{"android", "ios"},
			"min_age":   float64(18),
		},
		"maintenance_mode": false,
		"announcement":     "festive offer",
	}

	got := Reconstruct(Flatten(tree))
	if !reflect.DeepEqual(got, tree) {
		t.Fatalf("round trip mismatch:\n got: %#v\nwant: %#v", got, tree)
	}
}

func TestFlattenTopLevelScalarsGoToGeneral(t *testing.T) {
	tree := map[string]interface{}{
		"maintenance_mode": true,
		"tags":             []interface{}{"a", "b"},
	}

	entries := Flatten(tree)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Category != GeneralCategory {
			t.Fatalf("expected category %q for %q, got %q", GeneralCategory, e.Key, e.Category)
		}
		// General keys keep the bare top-level name, no prefix
		if e.Key != "maintenance_mode" && e.Key != "tags" {
			t.Fatalf("unexpected key %q", e.Key)
		}
	}
}

func TestFlattenCategoryKeysArePrefixed(t *testing.T) {
	entries := Flatten(map[string]interface{}{
		"contact": map[string]interface{}{"email": "x@y.z"},
	})

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Key != "contact.email" || entries[0].Category != "contact" {
		t.Fatalf("got key=%q category=%q", entries[0].Key, entries[0].Category)
	}
	if entries[0].Value != `"x@y.z"` {
		t.Fatalf("expected JSON-encoded value, got %q", entries[0].Value)
	}
}

func TestReconstructToleratesRawStrings(t *testing.T) {
	// Rows written before the JSON convention hold bare strings
	tree := Reconstruct([]Entry{
		{Category: "contact", Key: "contact.email", Value: "plain@vaahan.in"},
	})

	contact, ok := tree["contact"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected contact category, got %#v", tree)
	}
	if contact["email"] != "plain@vaahan.in" {
		t.Fatalf("expected raw string passthrough, got %#v", contact["email"])
	}
}

func TestDeepMergeMergesNestedObjects(t *testing.T) {
	dst := map[string]interface{}{
		"contact": map[string]interface{}{
			"email": "old@x.com",
			"phone": "+91 11111",
		},
	}
	src := map[string]interface{}{
		"contact": map[string]interface{}{
			"email": "new@x.com",
		},
	}

	out := DeepMerge(dst, src)

	contact := out["contact"].(map[string]interface{})
	if contact["email"] != "new@x.com" {
		t.Fatalf("expected source to win, got %v", contact["email"])
	}
	if contact["phone"] != "+91 11111" {
		t.Fatalf("expected sibling key preserved, got %v", contact["phone"])
	}
}

func TestDeepMergeReplacesArraysWholesale(t *testing.T) {
	dst := map[string]interface{}{
		"apps": map[string]interface{}{
			"platforms": []interface{}{"android", "ios", "web"},
		},
	}
	src := map[string]interface{}{
		"apps": map[string]interface{}{
			"platforms": []interface{}{"android"},
		},
	}

	out := DeepMerge(dst, src)

	platforms := out["apps"].(map[string]interface{})["platforms"].([]interface{})
	if len(platforms) != 1 || platforms[0] != "android" {
		t.Fatalf("expected array replaced, not merged: %#v", platforms)
	}
}

func TestDeepMergeDoesNotMutateInputs(t *testing.T) {
	dst := map[string]interface{}{
		"theme": map[string]interface{}{"dark_mode": false},
	}
	src := map[string]interface{}{
		"theme": map[string]interface{}{"dark_mode": true},
	}

	_ = DeepMerge(dst, src)

	if dst["theme"].(map[string]interface{})["dark_mode"] != false {
		t.Fatal("DeepMerge mutated its destination input")
	}
}
