// skipscan reports the first offset of byte patterns in files.
package main

import (
	"os"

	"github.com/mhr3/skipscan/cmd/skipscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code > 0 {
			os.Exit(code)
		}
		os.Exit(2)
	}
}
