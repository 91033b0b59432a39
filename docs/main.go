package main

import (
	"fmt"

	"github.com/cybergodev/jsonmutator"
)

func main() {
	doc := jsonmutator.FromJSON(`{"user": {"name": "Alice"}}`)

	// Missing field
	email := doc.Get("user.email", "none")
	// email = "none", the default
	fmt.Println(email, doc.Has("user.email"))

	// Null field
	doc2 := jsonmutator.FromJSON(`{"user": {"name": "Alice", "email": null}}`)
	email2, found := doc2.Lookup("user.email")
	// email2 = nil, found = true, but Has reports false for a stored null
	fmt.Println(email2, found, doc2.Has("user.email"))
}
