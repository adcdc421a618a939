// SPDX-License-Identifier: MPL-2.0

// polyrun executes scripts written in any of the supported languages through
// one uniform engine-dispatch lifecycle.
package main

import (
	cmd "github.com/polyrun/polyrun/cmd/polyrun"
)

func main() {
	cmd.Execute()
}
