// Package main is the entry point for the razorbuild CLI.
package main

import "razor.dev/pkg/razorbuild/cmd"

func main() {
	cmd.Execute()
}
