package content

import "sync/atomic"

// Store holds the current site copy. Readers never block reloads.
type Store struct {
	site atomic.Pointer[Site]
	path string
}

// NewStore loads the content at path (or the built-in copy) into a Store.
func NewStore(path string) (*Store, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	st := &Store{path: path}
	st.site.Store(s)
	return st, nil
}

// Site returns the current copy. Callers must not modify it.
func (st *Store) Site() *Site { return st.site.Load() }

// Path is the file the store was loaded from, empty for the built-in copy.
func (st *Store) Path() string { return st.path }

// Reload re-reads the content file. On failure the current copy is kept.
func (st *Store) Reload() error {
	s, err := Load(st.path)
	if err != nil {
		return err
	}
	st.site.Store(s)
	return nil
}
