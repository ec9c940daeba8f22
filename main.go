// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/filemeta/codebit/cmd/codebit"

func main() {
	cmd.Execute()
}
