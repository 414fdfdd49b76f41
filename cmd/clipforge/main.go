package main

import (
	"os"

	"github.com/clipforge/clipforge/internal/app"
)

func main() {
	os.Exit(app.Run("clipforge-api", run))
}
