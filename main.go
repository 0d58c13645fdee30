package main

import "github.com/marcodamonte/oop-concepts/internal/cli"

// Each demo covers one object-oriented or error-handling concept.
//
// Run:
//
//	go run .            # every demo
//	go run . list       # the catalog
//	go run . bank       # a single demo
func main() {
	cli.Execute()
}
