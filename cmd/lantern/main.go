// Package main provides the lantern CLI, a command-line front end over
// the Lantern journal store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if types.IsValidation(err) || errors.Is(err, types.ErrNotFound) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
