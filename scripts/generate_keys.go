//go:build ignore

// Generates random secrets for local development.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

type keySpec struct {
	envVar  string
	comment string
	bytes   int
}

var keySpecs = []keySpec{
	{envVar: "JWT_SECRET_KEY", comment: "# JWT access token signing key", bytes: 32},
	{envVar: "JWT_REFRESH_SECRET_KEY", comment: "# JWT refresh token signing key", bytes: 32},
	{envVar: "API_KEYS", comment: "# API key (optional, for X-API-Key authentication)", bytes: 24},
}

func randomKey(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		fmt.Fprintf(os.Stderr, "generating key: %v\n", err)
		os.Exit(1)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func main() {
	fmt.Println("=== Pallet Service Key Generator ===")
	fmt.Println()
	fmt.Println("Add these to your .env file:")
	fmt.Println()

	for _, spec := range keySpecs {
		fmt.Println(spec.comment)
		fmt.Printf("%s=%s\n\n", spec.envVar, randomKey(spec.bytes))
	}

	fmt.Println("Never commit these keys; use distinct keys per environment and")
	fmt.Println("keep production keys in a secret manager.")
}
