package plist

// makeDict builds an OrderedDict from alternating key/value pairs.
func makeDict(pairs ...interface{}) *OrderedDict {
	d := NewOrderedDict()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i].(string), pairs[i+1].(Value))
	}
	return d
}

func makeSortedDict(pairs ...interface{}) *SortedDict {
	d := NewSortedDict()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i].(string), pairs[i+1].(Value))
	}
	return d
}

// valueTree exercises every kind the writer can emit. Boolean and Tuple
// are checked separately: they re-parse as Integer and Array.
var valueTree = makeDict(
	"name", String("stepconv"),
	"quoted", String("two words, punctuation!"),
	"empty", String(""),
	"number_ish", String("123"),
	"dotted", String("1.2.3"),
	"count", Integer(-42),
	"big", Integer(1<<62),
	"ratio", Real(0.5),
	"unicode", String("héllo 世界 \U0001f600"),
	"escapes", String("\a\b\f\n\r\t\v\\\""),
	"control", String("bell\x01tone"),
	"blob", Data{0xde, 0xad, 0xbe, 0xef, 0x01},
	"nothing", Data{},
	"flags", Array{Integer(1), String("on"), Real(2.5)},
	"nested", makeDict(
		"inner", Array{Array{}, makeDict()},
	),
)

// valueTreeAsText is the compact rendering of valueTree, used by the
// parse benchmark.
var valueTreeAsText = func() string {
	out, err := Write(valueTree)
	if err != nil {
		panic(err)
	}
	return string(out)
}()

// normalize rewrites a tree the way a write/parse round trip would:
// Boolean becomes Integer 0/1, Tuple becomes Array.
func normalize(v Value) Value {
	switch v := v.(type) {
	case Boolean:
		if v {
			return Integer(1)
		}
		return Integer(0)
	case Tuple:
		return normalizeSlice(v)
	case Array:
		return normalizeSlice(v)
	case *OrderedDict:
		d := NewOrderedDict()
		for _, k := range v.Keys() {
			e, _ := v.Get(k)
			d.Set(k, normalize(e))
		}
		return d
	case *SortedDict:
		d := NewSortedDict()
		for _, k := range v.Keys() {
			e, _ := v.Get(k)
			d.Set(k, normalize(e))
		}
		return d
	}
	return v
}

func normalizeSlice(values []Value) Array {
	out := make([]Value, 0, len(values))
	for _, e := range values {
		out = append(out, normalize(e))
	}
	return Array(out)
}
