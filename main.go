/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokenpipe normalizes design tokens and exports them as
// stylesheets and theme files.
package main

import (
	"os"

	"bennypowers.dev/tokenpipe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
