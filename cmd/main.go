package main

import (
	"os"

	"github.com/GuillaumeBer/cryptoTrack/internal/app"
)

// @title cryptoTrack API
// @version 1.0
// @description Catalog of cryptocurrencies with USDC tradability on the reference exchange and on-demand price resolution.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
