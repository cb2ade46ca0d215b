package main

import (
	"github.com/jsphweid/chordex/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// CHORDEX_* settings may come from a .env file
	_ = godotenv.Load()
	cmd.Execute()
}
