package internal

// Lookup resolves segments against root. Maps are descended by key, lists by
// canonical non-negative index; anything else ends resolution with ok=false.
// A stored nil is found (ok=true) and returned as nil.
func Lookup(root *Map, segments []string) (any, bool) {
	var current any = root
	for _, segment := range segments {
		switch v := current.(type) {
		case *Map:
			next, exists := v.Get(segment)
			if !exists {
				return nil, false
			}
			current = next
		case []any:
			index, ok := ParseAndValidateArrayIndex(segment, len(v))
			if !ok {
				return nil, false
			}
			current = v[index]
		default:
			return nil, false
		}
	}
	return current, true
}

// Assign stores value at segments, creating empty maps for missing or
// scalar intermediates. Lists accept an index one past the end as an append;
// any other non-index segment turns the list into a map keyed by position.
func Assign(root *Map, segments []string, value any) {
	if len(segments) == 0 {
		return
	}
	assign(root, segments, value)
}

func assign(container any, segments []string, value any) any {
	segment, last := segments[0], len(segments) == 1

	switch c := container.(type) {
	case *Map:
		if last {
			c.Set(segment, value)
			return c
		}
		child, _ := c.Get(segment)
		if !IsContainer(child) {
			child = NewMap(1)
		}
		c.Set(segment, assign(child, segments[1:], value))
		return c

	case []any:
		index, ok := ParseArrayIndex(segment)
		if !ok || index > len(c) {
			return assign(MapFromList(c), segments, value)
		}
		if index == len(c) {
			c = append(c, nil)
		}
		if last {
			c[index] = value
			return c
		}
		child := c[index]
		if !IsContainer(child) {
			child = NewMap(1)
		}
		c[index] = assign(child, segments[1:], value)
		return c
	}

	// Only reachable for a non-container, which callers replace before descending
	m := NewMap(1)
	return assign(m, segments, value)
}

// Remove deletes the entry addressed by segments. Missing intermediates make it a no-op.
// Removing the last list element shortens the list; removing any other element
// turns the list into a map keyed by position, so the remaining indexes keep
// addressing the same values.
func Remove(root *Map, segments []string) {
	if len(segments) == 0 {
		return
	}
	remove(root, segments)
}

func remove(container any, segments []string) any {
	segment, last := segments[0], len(segments) == 1

	switch c := container.(type) {
	case *Map:
		if last {
			c.Delete(segment)
			return c
		}
		child, exists := c.Get(segment)
		if exists && IsContainer(child) {
			c.Set(segment, remove(child, segments[1:]))
		}
		return c

	case []any:
		index, ok := ParseAndValidateArrayIndex(segment, len(c))
		if !ok {
			return c
		}
		if last {
			if index == len(c)-1 {
				return c[:index]
			}
			m := MapFromList(c)
			m.Delete(segment)
			return m
		}
		if IsContainer(c[index]) {
			c[index] = remove(c[index], segments[1:])
		}
		return c
	}
	return container
}
