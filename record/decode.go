package record

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Decode reads a tree of records from a YAML document. As JSON is a subset
// of YAML, JSON documents are accepted as well. The document is either a
// sequence of records (the roots) or a single record, which is taken as the
// only root. An empty document is an empty tree.
//
// Mappings are converted to Records at every level; keys which are not
// strings are converted to their printed form. Numbers without a fractional
// part are decoded as int, whether written as 1 or as 1.0, so that ids and
// parent references of a document compare equal.
func Decode(data []byte) ([]Record, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		tracer().Errorf("cannot decode forest: %v", err)
		return nil, fmt.Errorf("record: decoding forest: %w", err)
	}
	switch d := normalize(doc).(type) {
	case nil:
		return []Record{}, nil
	case Record:
		return []Record{d}, nil
	case []any:
		roots := make([]Record, len(d))
		for i, el := range d {
			r, ok := el.(Record)
			if !ok {
				return nil, fmt.Errorf("record: root #%d is a %T: %w", i, el, ErrNotAForest)
			}
			roots[i] = r
		}
		return roots, nil
	default:
		return nil, fmt.Errorf("record: document is a %T: %w", d, ErrNotAForest)
	}
}

func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		r := make(Record, len(x))
		for k, el := range x {
			r[k] = normalize(el)
		}
		return r
	case map[any]any:
		r := make(Record, len(x))
		for k, el := range x {
			r[fmt.Sprint(k)] = normalize(el)
		}
		return r
	case []any:
		for i, el := range x {
			x[i] = normalize(el)
		}
		return x
	case float64:
		if x == math.Trunc(x) && math.Abs(x) <= 1<<53 {
			return int(x)
		}
	}
	return v
}
