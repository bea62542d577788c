package source

// StringID identifies an interned string. NoStringID is reserved and
// maps to the empty string.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates strings, handing out stable dense IDs. Used
// for function identities repeated across inlined call stacks.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner creates an interner holding only the empty string at
// NoStringID.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, inserting it on first sight. The
// interner keeps its own copy of the string.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := string([]byte(s))
	id := StringID(len(in.byID)) // #nosec G115 -- bounded by available memory long before uint32
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Lookup returns the string for id, or ("", false) for an unknown ID.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup returns the string for id and panics on an unknown ID.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Has reports whether id is valid in this interner.
func (in *Interner) Has(id StringID) bool {
	return int(id) < len(in.byID)
}

// Len returns the number of interned strings, counting NoStringID.
func (in *Interner) Len() int {
	return len(in.byID)
}

// All returns the interned strings indexed by their IDs. The returned
// slice aliases internal storage and must not be mutated.
func (in *Interner) All() []string {
	return in.byID
}
