package internal

// MergeRecursive merges src (*Map or []any) into dst with accumulate semantics:
//   - map into map: string keys are merged one by one, see collide
//   - integer keys and list elements are pushed under the next free integer keys
//   - a string key present on both sides keeps both values (collide)
//
// dst is modified in place and returned.
func MergeRecursive(dst *Map, src any) *Map {
	return mergeArrays(dst, src, 0).(*Map)
}

// MergeOverwrite merges src into dst; maps present on both sides merge
// recursively and every other collision takes the incoming value.
// A list src is pushed element by element, as with MergeRecursive.
func MergeOverwrite(dst *Map, src any) *Map {
	switch s := src.(type) {
	case *Map:
		overwrite(dst, s, 0)
	case []any:
		for _, elem := range s {
			dst.Push(elem)
		}
	}
	return dst
}

// mergeArrays merges two "arrays" (*Map or []any). Two lists concatenate;
// a map absorbs a list by pushing; a list absorbing a map becomes a map first.
func mergeArrays(dst, src any, depth int) any {
	if depth > MaxMergeDepth {
		return src
	}

	switch d := dst.(type) {
	case []any:
		switch s := src.(type) {
		case []any:
			return append(d, s...)
		case *Map:
			if s.Len() == 0 {
				return d
			}
			if integerKeys(s) {
				for _, v := range s.All() {
					d = append(d, v)
				}
				return d
			}
			return mergeArrays(MapFromList(d), s, depth)
		}

	case *Map:
		switch s := src.(type) {
		case []any:
			for _, elem := range s {
				d.Push(elem)
			}
		case *Map:
			for k, v := range s.All() {
				if _, isIndex := canonicalInt(k); isIndex {
					d.Push(v)
				} else if existing, ok := d.Get(k); ok {
					d.Set(k, collide(existing, v, depth+1))
				} else {
					d.Set(k, v)
				}
			}
		}
		return d
	}
	return dst
}

// collide combines two values found under the same key. The existing value is
// wrapped in a list unless it is already a container, then the incoming value is
// merged into it (when a container) or appended (when a scalar). So
// {"a":1} + {"a":2} gives {"a":[1,2]}, and a stored nil survives as [nil, ...].
func collide(existing, incoming any, depth int) any {
	var acc any
	if IsContainer(existing) {
		acc = existing
	} else {
		acc = []any{existing}
	}

	if IsContainer(incoming) {
		return mergeArrays(acc, incoming, depth)
	}
	switch a := acc.(type) {
	case []any:
		return append(a, incoming)
	case *Map:
		a.Push(incoming)
		return a
	}
	return acc
}

func integerKeys(m *Map) bool {
	for _, k := range m.Keys() {
		if _, ok := canonicalInt(k); !ok {
			return false
		}
	}
	return true
}

func overwrite(dst, src *Map, depth int) {
	for k, v := range src.All() {
		existing, ok := dst.Get(k)
		dm, dstIsMap := existing.(*Map)
		sm, srcIsMap := v.(*Map)
		if ok && dstIsMap && srcIsMap && depth < MaxMergeDepth {
			overwrite(dm, sm, depth+1)
			continue
		}
		dst.Set(k, v)
	}
}
