package store

import (
	"math/rand"
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func newUserStore() *Store {
	return NewStore(&Options{
		Kind: "users",
		Defaults: map[string]any{
			"name":  "Unknown",
			"email": "",
		},
		Rand: rand.New(rand.NewSource(42)),
	})
}

func newProductStore() *Store {
	return NewStore(&Options{
		Kind: "products",
		Defaults: map[string]any{
			"name":  "Unknown Product",
			"price": 0.0,
		},
		Rand: rand.New(rand.NewSource(42)),
	})
}

func TestCreateEmpty(t *testing.T) {

	s := newUserStore()

	// Run
	user := s.Create(Record{})

	// Check
	id, isString := user["id"].(string)
	AssertTrue(isString)
	AssertEqual(len(id), 9)
	for _, c := range id {
		AssertTrue(strings.ContainsRune(idAlphabet, c))
	}
	AssertEqual(user["name"], "Unknown")
	AssertEqual(user["email"], "")
	AssertEqual(s.Len(), 1)
}

func TestCreateWithFields(t *testing.T) {

	s := newUserStore()

	// Run
	user := s.Create(Record{"name": "Alice"})

	// Check
	AssertEqual(user["name"], "Alice")
	AssertEqual(user["email"], "")
	AssertNotEqual(user["id"], "")
}

func TestCreateKeepsArbitraryFields(t *testing.T) {

	s := newProductStore()

	// Run
	product := s.Create(Record{
		"name":  "Hammer",
		"stock": 25,
	})

	// Check
	AssertEqual(product["name"], "Hammer")
	AssertEqual(product["price"], 0.0)
	AssertEqual(product["stock"], 25)
}

func TestCreateExplicitID(t *testing.T) {

	s := newUserStore()

	// Run
	user := s.Create(Record{"id": "fulanez12"})

	// Check
	AssertEqual(user["id"], "fulanez12")

	found, err := s.Get("fulanez12")
	AssertNil(err)
	AssertEqual(found["name"], "Unknown")
}

func TestCreateDuplicatedID(t *testing.T) {

	s := newUserStore()

	// Setup: uniqueness is not enforced, two records may share an id
	s.Create(Record{"id": "collide00", "name": "First"})
	s.Create(Record{"id": "collide00", "name": "Second"})

	// Check: first match (insertion order) wins
	AssertEqual(s.Len(), 2)
	found, err := s.Get("collide00")
	AssertNil(err)
	AssertEqual(found["name"], "First")
}

func TestGetRoundTrip(t *testing.T) {

	s := newUserStore()

	created := s.Create(Record{"name": "Alice", "email": "alice@example.com"})

	found, err := s.Get(created["id"])
	AssertNil(err)
	AssertEqualJson(found, created)
}

func TestGetNotFound(t *testing.T) {

	s := newUserStore()
	s.Create(Record{"name": "Alice"})

	found, err := s.Get("does-not-exist")
	AssertEqual(err, ErrRecordNotFound)
	AssertNil(found)
}

func TestGetIdempotent(t *testing.T) {

	s := newUserStore()
	created := s.Create(Record{"name": "Alice"})

	first, errFirst := s.Get(created["id"])
	second, errSecond := s.Get(created["id"])

	AssertNil(errFirst)
	AssertNil(errSecond)
	AssertEqualJson(first, second)
}

func TestFetchDelegatesToGet(t *testing.T) {

	s := newProductStore()
	created := s.Create(Record{"name": "Hammer"})

	got, errGot := s.Get(created["id"])
	fetched, errFetched := s.Fetch(created["id"])
	AssertNil(errGot)
	AssertNil(errFetched)
	AssertEqualJson(fetched, got)

	_, errGot = s.Get("missing")
	_, errFetched = s.Fetch("missing")
	AssertEqual(errFetched, errGot)
}

func TestUpdate(t *testing.T) {

	s := newUserStore()
	created := s.Create(Record{"name": "Alice", "email": "alice@example.com"})
	id := created["id"]

	// Run
	updated, err := s.Update(id, Record{"name": "Bob"})

	// Check: only the name changes, in place
	AssertNil(err)
	AssertEqual(updated["name"], "Bob")
	AssertEqual(updated["email"], "alice@example.com")
	AssertEqual(s.Len(), 1)

	found, _ := s.Get(id)
	AssertEqual(found["name"], "Bob")
}

func TestUpdateNotFound(t *testing.T) {

	s := newUserStore()
	s.Create(Record{"name": "Alice"})

	snapshot := []Record{}
	s.Traverse(func(record Record) {
		snapshot = append(snapshot, record)
	})

	// Run
	updated, err := s.Update("does-not-exist", Record{"name": "Bob"})

	// Check: no mutation at all
	AssertEqual(err, ErrRecordNotFound)
	AssertNil(updated)
	AssertEqual(s.Len(), 1)
	AssertEqualJson(s.Records, snapshot)
}

func TestUpdateIdentifier(t *testing.T) {

	s := newUserStore()
	created := s.Create(Record{"id": "original0", "name": "Alice"})
	s.Create(Record{"name": "Bob"})

	// Run: the identifier field is not protected
	_, err := s.Update("original0", Record{"id": "changed00"})
	AssertNil(err)

	// Check: the record keeps its position but answers to the new id only
	_, errOld := s.Get("original0")
	AssertEqual(errOld, ErrRecordNotFound)

	found, errNew := s.Get("changed00")
	AssertNil(errNew)
	AssertEqual(found["name"], "Alice")
	AssertEqualJson(s.Records[0], created)
}

func TestTraverseInsertionOrder(t *testing.T) {

	s := newProductStore()
	s.Create(Record{"name": "Hammer"})
	s.Create(Record{"name": "Anvil"})
	s.Create(Record{"name": "Nail"})

	names := []string{}
	s.Traverse(func(record Record) {
		names = append(names, record["name"].(string))
	})

	AssertEqualJson(names, []string{"Hammer", "Anvil", "Nail"})
}

func TestDefaultIDFieldName(t *testing.T) {

	s := NewStore(nil)

	record := s.Create(Record{})
	_, hasID := record["id"]
	AssertTrue(hasID)
}

func TestCustomIDFieldName(t *testing.T) {

	s := NewStore(&Options{
		Kind:    "invoices",
		IDField: "invoice_number",
	})

	record := s.Create(Record{"invoice_number": "F-2024-001"})

	found, err := s.Get("F-2024-001")
	AssertNil(err)
	AssertEqualJson(found, record)
}
