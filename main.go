package main

import (
	"fmt"
	"os"

	"github.com/lakshaymaurya-felt/devsweep/cmd"
	"github.com/lakshaymaurya-felt/devsweep/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  %s %v\n", ui.ErrorStyle().Render("Error:"), err)
		os.Exit(1)
	}
}
