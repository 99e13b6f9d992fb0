package main

import (
	"encoding/json"
	"reflect"
	"testing"

	"ostep.dev/plist"
)

func TestToValueFromJSON(t *testing.T) {
	var doc interface{}
	err := json.Unmarshal([]byte(`{"n": 3, "r": 0.5, "s": "hi", "b": true, "z": null, "l": [1, "two"]}`), &doc)
	if err != nil {
		t.Fatal(err)
	}
	root := toValue(doc)
	d, ok := root.(plist.Dict)
	if !ok {
		t.Fatalf("expected a dictionary, got %T", root)
	}

	expect := map[string]plist.Value{
		"n": plist.Integer(3),
		"r": plist.Real(0.5),
		"s": plist.String("hi"),
		"b": plist.Boolean(true),
		"z": plist.Nil,
		"l": plist.Array{plist.Integer(1), plist.String("two")},
	}
	for k, want := range expect {
		got, ok := d.Get(k)
		if !ok {
			t.Fatalf("missing key %q", k)
		}
		if !reflect.DeepEqual(want, got) {
			t.Errorf("%q: expected %#v, got %#v", k, want, got)
		}
	}
}

func TestToValueCoercesKeys(t *testing.T) {
	root := toValue(map[interface{}]interface{}{1: "one", true: "yes"})
	d := root.(plist.Dict)
	if v, ok := d.Get("1"); !ok || v != plist.String("one") {
		t.Errorf(`Get("1") = %v, %v`, v, ok)
	}
	if v, ok := d.Get("true"); !ok || v != plist.String("yes") {
		t.Errorf(`Get("true") = %v, %v`, v, ok)
	}
}

func TestBridgeRoundTrip(t *testing.T) {
	in := `{"a": [1, 2.5, "x"], "b": {"c": null}}`
	var doc interface{}
	if err := json.Unmarshal([]byte(in), &doc); err != nil {
		t.Fatal(err)
	}

	text, err := plist.Write(toValue(doc), plist.SortKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := plist.Parse(text)
	if err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(fromValue(parsed))
	if err != nil {
		t.Fatal(err)
	}
	// null has no plist representation and is dropped on the way through
	if string(out) != `{"a":[1,2.5,"x"],"b":{}}` {
		t.Errorf("got %s", out)
	}
}
