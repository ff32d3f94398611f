// SPDX-License-Identifier: EPL-2.0

// Command spirit renders frequency catalogs and presets into WAV files.
//
// Usage:
//
//	spirit [global flags] <command> [command flags] [args]
//
// Run "spirit help" for the list of commands.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
