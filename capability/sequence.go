package capability

// Entry is one registered variant together with the name it was registered under.
type Entry[C any] struct {
	Name    string
	Variant C
}

// Sequence is an ordered collection of variants that all satisfy capability C.
//
// C is normally an interface type; the sequence itself never looks at the
// concrete type behind it. A nil *Sequence behaves like an empty one for all
// read operations.
type Sequence[C any] struct {
	entries []Entry[C]
	index   map[string]int
}

// NewSequence returns an empty sequence.
func NewSequence[C any]() *Sequence[C] {
	return &Sequence[C]{index: map[string]int{}}
}

// Add appends a variant under name.
//
// It fails with ErrEmptyName for an empty name and with DuplicateNameError
// when the name is already registered. On failure the sequence is unchanged.
func (s *Sequence[C]) Add(name string, v C) error {
	if name == "" {
		return ErrEmptyName
	}
	if s.index == nil {
		s.index = map[string]int{}
	}
	if _, exists := s.index[name]; exists {
		return DuplicateNameError{Name: name}
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry[C]{Name: name, Variant: v})
	return nil
}

// Register appends a variant and returns the sequence for chaining.
//
// Registration happens while a driver builds its fixed variant set, so a bad
// name is a programming mistake: Register panics with the error Add would
// have returned.
func (s *Sequence[C]) Register(name string, v C) *Sequence[C] {
	if err := s.Add(name, v); err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of registered variants.
func (s *Sequence[C]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Names returns the registered names in insertion order.
func (s *Sequence[C]) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Name)
	}
	return out
}

// Entries returns a copy of the registered entries in insertion order.
func (s *Sequence[C]) Entries() []Entry[C] {
	if s == nil {
		return nil
	}
	out := make([]Entry[C], len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup returns the variant registered under name.
func (s *Sequence[C]) Lookup(name string) (C, bool) {
	var zero C
	if s == nil || s.index == nil {
		return zero, false
	}
	i, ok := s.index[name]
	if !ok {
		return zero, false
	}
	return s.entries[i].Variant, true
}

// Get returns the variant registered under name or an UnknownNameError.
func (s *Sequence[C]) Get(name string) (C, error) {
	v, ok := s.Lookup(name)
	if !ok {
		return v, UnknownNameError{Name: name}
	}
	return v, nil
}

// Each calls fn for every variant in insertion order.
//
// It stops at the first error and returns it.
func (s *Sequence[C]) Each(fn func(name string, v C) error) error {
	if s == nil {
		return nil
	}
	for _, e := range s.entries {
		if err := fn(e.Name, e.Variant); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch invokes call on every variant and returns the results in
// insertion order.
func Dispatch[C any, R any](s *Sequence[C], call func(C) R) []R {
	out := make([]R, 0, s.Len())
	_ = s.Each(func(_ string, v C) error {
		out = append(out, call(v))
		return nil
	})
	return out
}

// DispatchErr is Dispatch for fallible capabilities.
//
// It stops at the first error and returns the results collected so far.
func DispatchErr[C any, R any](s *Sequence[C], call func(C) (R, error)) ([]R, error) {
	out := make([]R, 0, s.Len())
	err := s.Each(func(_ string, v C) error {
		r, err := call(v)
		if err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, err
}
