package store

import (
	"errors"
	"math/rand"
)

// Record is one entity instance: an open mapping from field name to value.
// The only field guaranteed to exist after Create is the identifier field.
type Record map[string]any

// Store holds the ordered collection of records for a single entity kind
// and provides identifier-keyed access. It is meant for single-threaded
// use: callers that need concurrent access must synchronize around it.
type Store struct {
	Kind     string // Just informative...
	IDField  string
	Defaults map[string]any
	Records  []Record

	generator *IDGenerator
}

type Options struct {
	Kind     string         `json:"kind"`
	IDField  string         `json:"id_field"`
	Defaults map[string]any `json:"defaults"`
	Rand     *rand.Rand     `json:"-"`
}

var ErrRecordNotFound = errors.New("record not found")

func NewStore(options *Options) *Store {

	if options == nil {
		options = &Options{}
	}

	idField := options.IDField
	if idField == "" {
		idField = "id"
	}

	generator := defaultIDGenerator
	if options.Rand != nil {
		generator = &IDGenerator{rand: options.Rand}
	}

	return &Store{
		Kind:      options.Kind,
		IDField:   idField,
		Defaults:  options.Defaults,
		Records:   []Record{},
		generator: generator,
	}
}

// Get scans the collection in insertion order and returns the first record
// whose identifier field equals id. Duplicated identifiers can happen when
// a caller creates records with an explicit id; first match wins.
func (s *Store) Get(id any) (Record, error) {
	for _, record := range s.Records {
		if record[s.IDField] == id {
			return record, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Fetch is the same lookup as Get, kept as a separate entry point for call
// sites that model a remote fetch.
func (s *Store) Fetch(id any) (Record, error) {
	return s.Get(id)
}

// Create builds a record from fields, fills the identifier and the known
// defaults, and appends it to the collection. Caller fields always win,
// including an explicit identifier (even a duplicated one) and arbitrary
// extra fields. It never fails: there is no validation of any kind.
func (s *Store) Create(fields Record) Record {

	record := Record{}

	id, hasID := fields[s.IDField]
	if !hasID || id == "" || id == nil {
		id = s.generator.NewID()
	}
	record[s.IDField] = id

	for k, v := range s.Defaults {
		if _, exists := fields[k]; exists {
			continue
		}
		record[k] = resolveDefault(v)
	}

	for k, v := range fields {
		record[k] = v
	}

	s.Records = append(s.Records, record)

	return record
}

// Update merges partial into the record matching id, field by field and in
// place. Fields not mentioned are left untouched. The identifier field is
// not protected: overwriting it desynchronizes the record from its
// creation-time identity while keeping its position in the collection.
func (s *Store) Update(id any, partial Record) (Record, error) {

	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	for k, v := range partial {
		record[k] = v
	}

	return record, nil
}

// SetDefaults replaces the default-field table. It only affects records
// created afterwards.
func (s *Store) SetDefaults(defaults map[string]any) {
	s.Defaults = defaults
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	return len(s.Records)
}

// Traverse walks the collection in insertion order.
func (s *Store) Traverse(f func(record Record)) {
	for _, record := range s.Records {
		f(record)
	}
}
