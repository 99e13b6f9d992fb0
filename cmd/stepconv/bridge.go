package main

import (
	"fmt"
	"math"

	yaml "gopkg.in/yaml.v2"

	"ostep.dev/plist"
)

type yamlMapSlice = yaml.MapSlice

// toValue converts a decoded JSON or YAML document into a plist value
// tree. Dictionary keys that are not strings are coerced to their text
// form. Map order is not recoverable from either format, so dictionaries
// are built sort-on-write.
func toValue(doc interface{}) plist.Value {
	switch doc := doc.(type) {
	case nil:
		return plist.Nil
	case bool:
		return plist.Boolean(doc)
	case int:
		return plist.Integer(doc)
	case int64:
		return plist.Integer(doc)
	case uint64:
		return plist.Integer(doc)
	case float64:
		// JSON numbers all arrive as float64; keep integral ones integral.
		if doc == math.Trunc(doc) && math.Abs(doc) < 1<<53 {
			return plist.Integer(int64(doc))
		}
		return plist.Real(doc)
	case string:
		return plist.String(doc)
	case []byte:
		return plist.Data(doc)
	case []interface{}:
		arr := make(plist.Array, 0, len(doc))
		for _, e := range doc {
			arr = append(arr, toValue(e))
		}
		return arr
	case map[string]interface{}:
		d := plist.NewSortedDict()
		for k, v := range doc {
			d.Set(k, toValue(v))
		}
		return d
	case map[interface{}]interface{}: // yaml.v2
		d := plist.NewSortedDict()
		for k, v := range doc {
			d.Set(fmt.Sprint(k), toValue(v))
		}
		return d
	case yamlMapSlice:
		d := plist.NewSortedDict()
		for _, item := range doc {
			d.Set(fmt.Sprint(item.Key), toValue(item.Value))
		}
		return d
	}
	return plist.String(fmt.Sprint(doc))
}

// fromValue converts a plist value tree into the interface{} shape the
// encoding/json and yaml packages expect.
func fromValue(v plist.Value) interface{} {
	switch v := v.(type) {
	case plist.Boolean:
		return bool(v)
	case plist.Integer:
		return int64(v)
	case plist.Real:
		return float64(v)
	case plist.String:
		return string(v)
	case plist.Data:
		return []byte(v)
	case plist.Array:
		return sliceFromValues(v)
	case plist.Tuple:
		return sliceFromValues(v)
	case plist.Dict:
		m := make(map[string]interface{}, v.Len())
		for _, k := range v.Keys() {
			e, _ := v.Get(k)
			m[k] = fromValue(e)
		}
		return m
	}
	return nil // plist.Nil
}

func sliceFromValues(values []plist.Value) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, e := range values {
		out = append(out, fromValue(e))
	}
	return out
}
