package main

import (
	"github.com/joho/godotenv"

	"github.com/devportfolio/portfolio/cmd/portfolioctl/cmd"
)

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	cmd.Execute()
}
