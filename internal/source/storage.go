package source

// Storage interns strings generated during parsing (synthetic identifiers,
// expanded labels) so that tokens can refer to them by a small id instead of
// owning the text.
type Storage struct {
	strings []string
	index   map[string]int
}

func NewStorage() *Storage {
	return &Storage{index: make(map[string]int)}
}

// InternString registers s and returns its id. Interning the same string
// twice yields the same id. Ids start at 1; 0 is reserved to mean "not
// synthetic" on tokens.
func (st *Storage) InternString(s string) int {
	if id, ok := st.index[s]; ok {
		return id
	}
	st.strings = append(st.strings, s)
	id := len(st.strings)
	st.index[s] = id
	return id
}

// GetString resolves an id previously returned by InternString.
func (st *Storage) GetString(id int) (string, bool) {
	if id < 1 || id > len(st.strings) {
		return "", false
	}
	return st.strings[id-1], true
}
