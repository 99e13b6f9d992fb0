package plist

import "sort"

// Dict is the capability shared by both dictionary variants: insert,
// lookup, and iteration in the variant's serialization order. Keys are
// always strings. The interface is sealed; the two implementations are
// OrderedDict and SortedDict.
type Dict interface {
	Value

	// Set inserts or replaces an entry. Re-setting an existing key keeps
	// its original position.
	Set(key string, value Value)
	Get(key string) (Value, bool)
	Len() int

	// Keys returns the keys in insertion order.
	Keys() []string

	// writeKeys returns the keys in the order the writer should emit
	// them. Only SortedDict honors the sort request.
	writeKeys(sorted bool) []string
}

// OrderedDict preserves insertion order on write, always.
type OrderedDict struct {
	keys []string
	m    map[string]Value
}

func NewOrderedDict() *OrderedDict {
	return &OrderedDict{m: make(map[string]Value)}
}

func (*OrderedDict) TypeName() string {
	return "dictionary"
}

func (d *OrderedDict) Set(key string, value Value) {
	if _, ok := d.m[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.m[key] = value
}

func (d *OrderedDict) Get(key string) (Value, bool) {
	v, ok := d.m[key]
	return v, ok
}

func (d *OrderedDict) Len() int {
	return len(d.keys)
}

func (d *OrderedDict) Keys() []string {
	return d.keys
}

func (d *OrderedDict) writeKeys(bool) []string {
	return d.keys
}

// SortedDict remembers insertion order but may emit its keys in
// lexicographic order when the writer's sort-keys option is on.
type SortedDict struct {
	keys []string
	m    map[string]Value
}

func NewSortedDict() *SortedDict {
	return &SortedDict{m: make(map[string]Value)}
}

func (*SortedDict) TypeName() string {
	return "dictionary"
}

func (d *SortedDict) Set(key string, value Value) {
	if _, ok := d.m[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.m[key] = value
}

func (d *SortedDict) Get(key string) (Value, bool) {
	v, ok := d.m[key]
	return v, ok
}

func (d *SortedDict) Len() int {
	return len(d.keys)
}

func (d *SortedDict) Keys() []string {
	return d.keys
}

func (d *SortedDict) writeKeys(sorted bool) []string {
	if !sorted {
		return d.keys
	}
	keys := append([]string(nil), d.keys...)
	sort.Strings(keys)
	return keys
}
