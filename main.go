/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command lwc-resolve resolves LWC module specifiers to files on disk.
package main

import (
	"os"

	"github.com/lukethacoder/lwc-module-resolver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
