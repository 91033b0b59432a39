package internal

// mapOf builds a Map from alternating keys and values, keeping argument order
func mapOf(kv ...any) *Map {
	m := NewMap(len(kv) / 2)
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// plain converts a value to comparable Go values, with maps as map[string]any
func plain(v any) any {
	return Export(v)
}
