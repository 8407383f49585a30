package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vaahanhq/vaahan-api/utils/auth"
)

// Generates the bcrypt hash for the ADMIN_PASSWORD_HASH environment variable.
//
//	go run ./cmd/hashpassword <password>
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hashpassword <password>")
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println(hash)
}
