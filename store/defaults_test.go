package store

import (
	"testing"

	. "github.com/fulldump/biff"
	"github.com/google/uuid"
)

func TestDefaultsLiteral(t *testing.T) {

	s := NewStore(&Options{
		Defaults: map[string]any{
			"country": "ES",
		},
	})

	record := s.Create(Record{})
	AssertEqual(record["country"], "ES")

	record = s.Create(Record{"country": "FR"})
	AssertEqual(record["country"], "FR")
}

func TestDefaultsUuid(t *testing.T) {

	s := NewStore(&Options{
		Defaults: map[string]any{
			"tracking": "uuid()",
		},
	})

	record := s.Create(Record{})

	tracking, isString := record["tracking"].(string)
	AssertTrue(isString)
	_, err := uuid.Parse(tracking)
	AssertNil(err)
}

func TestDefaultsUnixnano(t *testing.T) {

	s := NewStore(&Options{
		Defaults: map[string]any{
			"created_on": "unixnano()",
		},
	})

	record := s.Create(Record{})

	createdOn, isInt64 := record["created_on"].(int64)
	AssertTrue(isInt64)
	AssertTrue(createdOn > 0)
}

func TestDefaultsPresentFieldWins(t *testing.T) {

	s := NewStore(&Options{
		Defaults: map[string]any{
			"tracking": "uuid()",
		},
	})

	// An explicit value, even a falsy one, disables the default
	record := s.Create(Record{"tracking": ""})
	AssertEqual(record["tracking"], "")
}
