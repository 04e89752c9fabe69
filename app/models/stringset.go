package models

import (
	"encoding/json"
	"sort"
)

// StringSet holds voter identities. It marshals as a JSON string array so the
// stored document keeps the same wire shape as a plain list, but membership
// checks and removal are constant time.
type StringSet map[string]struct{}

// NewStringSet creates an empty set.
func NewStringSet() StringSet {
	return make(StringSet)
}

// Add inserts a value into the set.
func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Remove deletes a value from the set if present.
func (s StringSet) Remove(v string) {
	delete(s, v)
}

// Has reports whether the value is in the set.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s StringSet) Len() int {
	return len(s)
}

// MarshalJSON encodes the set as a sorted string array.
func (s StringSet) MarshalJSON() ([]byte, error) {
	members := make([]string, 0, len(s))
	for v := range s {
		members = append(members, v)
	}
	sort.Strings(members)
	return json.Marshal(members)
}

// UnmarshalJSON decodes a string array into the set.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var members []string
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	*s = make(StringSet, len(members))
	for _, v := range members {
		(*s)[v] = struct{}{}
	}
	return nil
}
