package utils

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	keys := GetKeys(map[string]int{
		"banana": 1,
		"apple":  2,
		"cherry": 3,
	})

	AssertEqualJson(keys, []string{"apple", "banana", "cherry"})
}

func TestRemarshal(t *testing.T) {
	input := map[string]any{
		"name":  "Alice",
		"price": 10.5,
	}

	output := struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}{}

	err := Remarshal(input, &output)

	AssertNil(err)
	AssertEqual(output.Name, "Alice")
	AssertEqual(output.Price, 10.5)
}
