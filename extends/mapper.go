package extends

// Absent marks a position with no matching entry.
const Absent = -1

// Record pairs a plugin's base entry with its Prettier compatibility entry.
// Each name is only ever written together with its own position.
type Record struct {
	// Position is the index of the base entry, or Absent.
	Position int
	// PrettierPosition is the index of the Prettier entry, or Absent.
	PrettierPosition int
	// PluginName is the raw base entry, empty when Position is Absent.
	PluginName string
	// PrettierPluginName is the raw Prettier entry, empty when PrettierPosition is Absent.
	PrettierPluginName string
}

// HasBase reports whether a base entry was extended.
func (r Record) HasBase() bool { return r.Position != Absent }

// HasPrettier reports whether a Prettier compatibility entry was extended.
func (r Record) HasPrettier() bool { return r.PrettierPosition != Absent }

func newRecord() Record {
	return Record{Position: Absent, PrettierPosition: Absent}
}

// Mapping is an insertion-ordered map from canonical plugin key to Record.
type Mapping struct {
	keys    []string
	records map[string]Record
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{records: make(map[string]Record)}
}

// Set stores r under key. A new key is appended to the key order.
func (m *Mapping) Set(key string, r Record) {
	if _, ok := m.records[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.records[key] = r
}

// Get returns the record stored under key.
func (m *Mapping) Get(key string) (Record, bool) {
	r, ok := m.records[key]
	return r, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Each calls fn for every key in insertion order.
func (m *Mapping) Each(fn func(key string, r Record)) {
	for _, key := range m.keys {
		fn(key, m.records[key])
	}
}

// Map builds the mapping for entries using n. Every entry is mapped,
// including the empty string.
func (n *Normalizer) Map(entries []string) *Mapping {
	m := NewMapping()
	for i, raw := range entries {
		n.add(m, i, raw)
	}
	return m
}

// MapValues builds the mapping for decoded extends elements. Elements that
// are not strings are skipped without shifting the positions of later
// entries.
func (n *Normalizer) MapValues(values []any) *Mapping {
	m := NewMapping()
	for i, v := range values {
		if raw, ok := v.(string); ok {
			n.add(m, i, raw)
		}
	}
	return m
}

func (n *Normalizer) add(m *Mapping, i int, raw string) {
	key, isFormatter := n.Normalize(raw)

	r, ok := m.Get(key)
	if !ok {
		r = newRecord()
	}
	if isFormatter {
		r.PrettierPosition = i
		r.PrettierPluginName = raw
	} else {
		r.Position = i
		r.PluginName = raw
	}
	m.Set(key, r)
}

// Map builds the mapping for entries using the default normalizer.
func Map(entries []string) *Mapping {
	return DefaultNormalizer().Map(entries)
}
