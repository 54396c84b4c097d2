// The bingo host server: the game engine, the agent tool API, and the board
// display channel, in one binary.
package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const releaseVersion = "0.1.0"

func main() {
	// A missing .env is fine; env vars and flags still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
