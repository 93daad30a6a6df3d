package store

import (
	"testing"

	. "github.com/fulldump/biff"
)

func collectNames(s *Store, options *FindOptions) ([]string, error) {
	names := []string{}
	err := s.Find(options, func(record Record) {
		names = append(names, record["name"].(string))
	})
	return names, err
}

func TestFindFilter(t *testing.T) {

	s := newProductStore()
	s.Create(Record{"name": "Hammer", "price": 10.0})
	s.Create(Record{"name": "Anvil", "price": 150.0})
	s.Create(Record{"name": "Nail", "price": 10.0})

	names, err := collectNames(s, &FindOptions{
		Filter: map[string]any{"price": 10.0},
	})

	AssertNil(err)
	AssertEqualJson(names, []string{"Hammer", "Nail"})
}

func TestFindEmptyFilterMatchesAll(t *testing.T) {

	s := newProductStore()
	s.Create(Record{"name": "Hammer"})
	s.Create(Record{"name": "Anvil"})

	names, err := collectNames(s, nil)

	AssertNil(err)
	AssertEqualJson(names, []string{"Hammer", "Anvil"})
}

func TestFindSkipLimit(t *testing.T) {

	s := newProductStore()
	s.Create(Record{"name": "Hammer"})
	s.Create(Record{"name": "Anvil"})
	s.Create(Record{"name": "Nail"})
	s.Create(Record{"name": "Saw"})

	names, err := collectNames(s, &FindOptions{
		Skip:  1,
		Limit: 2,
	})

	AssertNil(err)
	AssertEqualJson(names, []string{"Anvil", "Nail"})
}

func TestFindOperators(t *testing.T) {

	s := newProductStore()
	s.Create(Record{"name": "Hammer", "price": 10.0})
	s.Create(Record{"name": "Anvil", "price": 150.0})

	names, err := collectNames(s, &FindOptions{
		Filter: map[string]any{
			"price": map[string]any{"$gt": 100.0},
		},
	})

	AssertNil(err)
	AssertEqualJson(names, []string{"Anvil"})
}
