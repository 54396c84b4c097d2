// Package config provides environment configuration helpers for the bingo
// host commands.
package config

import "os"

// Defaults for the host server.
const (
	DefaultPort      = "8080"
	DefaultWordsFile = "words.json"
)

// HostURL returns the bingo host base URL from the BINGO_HOST env var.
// Falls back to the provided default if not set.
func HostURL(defaultURL string) string {
	if u := os.Getenv("BINGO_HOST"); u != "" {
		return u
	}
	return defaultURL
}

// WordsFile returns the word pool path from the BINGO_WORDS env var or the
// default.
func WordsFile() string {
	if f := os.Getenv("BINGO_WORDS"); f != "" {
		return f
	}
	return DefaultWordsFile
}

// Port returns the listen port from the BINGO_PORT env var or the default.
func Port() string {
	if p := os.Getenv("BINGO_PORT"); p != "" {
		return p
	}
	return DefaultPort
}
