package store_test

import (
	"fmt"

	"github.com/fulldump/recorddb/store"
)

func ExampleStore() {

	users := store.NewStore(&store.Options{
		Kind: "users",
		Defaults: map[string]any{
			"name":  "Unknown",
			"email": "",
		},
	})

	user := users.Create(store.Record{
		"name":  "John Doe",
		"email": "john@example.com",
	})
	fmt.Println("Created user:", user["name"])

	found, _ := users.Get(user["id"])
	fmt.Println("Found user:", found["email"])

	// Output:
	// Created user: John Doe
	// Found user: john@example.com
}
