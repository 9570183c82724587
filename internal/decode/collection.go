package decode

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Indexed is a collection keyed by a non-negative integer index. The backend
// sends the same collection as a JSON array when it is empty or positional
// and as a JSON object keyed by numeric strings otherwise; both decode here.
type Indexed[T any] map[int]T

// UnmarshalJSON maps array positions to indices and keeps object keys as
// given. A failing element fails the whole collection.
func (c *Indexed[T]) UnmarshalJSON(data []byte) error {
	s, err := Classify(data)
	if err != nil {
		return err
	}

	switch s.Kind {
	case KindArray:
		var items []json.RawMessage
		if err := json.Unmarshal(s.Raw, &items); err != nil {
			return wrapError("collection", string(s.Raw), "invalid array", err)
		}
		out := make(Indexed[T], len(items))
		for i, item := range items {
			var v T
			if err := json.Unmarshal(item, &v); err != nil {
				return wrapError("collection", string(item), "element "+strconv.Itoa(i), err)
			}
			out[i] = v
		}
		*c = out
		return nil

	case KindObject:
		var items map[string]json.RawMessage
		if err := json.Unmarshal(s.Raw, &items); err != nil {
			return wrapError("collection", string(s.Raw), "invalid object", err)
		}
		out := make(Indexed[T], len(items))
		for key, item := range items {
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 {
				return newError("collection", key, "key is not a non-negative integer")
			}
			if _, dup := out[idx]; dup {
				return newError("collection", key, "duplicate index")
			}
			var v T
			if err := json.Unmarshal(item, &v); err != nil {
				return wrapError("collection", string(item), "element "+key, err)
			}
			out[idx] = v
		}
		*c = out
		return nil
	}

	return newError("collection", s.String(), "expected an array or an object")
}

// Keys returns the indices in ascending order.
func (c Indexed[T]) Keys() []int {
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Sorted returns the elements in ascending index order.
func (c Indexed[T]) Sorted() []T {
	out := make([]T, 0, len(c))
	for _, k := range c.Keys() {
		out = append(out, c[k])
	}
	return out
}
