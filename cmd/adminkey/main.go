// One-off helper: prints the bcrypt hash for ADMIN_KEY_HASH.
//
//	go run ./cmd/adminkey <key>
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: adminkey <key>")
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adminkey: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
