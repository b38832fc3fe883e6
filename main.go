/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/orien/satsetup/cmd"

func main() {
	cmd.Execute()
}
