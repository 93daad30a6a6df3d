package store

import (
	"fmt"

	"github.com/SierraSoftworks/connor"
)

type FindOptions struct {
	Filter map[string]any `json:"filter"`
	Skip   int64          `json:"skip"`
	Limit  int64          `json:"limit"`
}

// Find walks the collection in insertion order and calls f with each record
// matching options.Filter, honoring Skip and Limit. A Limit of zero or less
// means no limit. An empty filter matches everything.
func (s *Store) Find(options *FindOptions, f func(record Record)) error {

	if options == nil {
		options = &FindOptions{}
	}

	hasFilter := len(options.Filter) > 0

	skip := options.Skip
	limit := options.Limit

	for _, record := range s.Records {

		if options.Limit > 0 && limit == 0 {
			break
		}

		if hasFilter {
			match, err := connor.Match(options.Filter, map[string]any(record))
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		f(record)
	}

	return nil
}
