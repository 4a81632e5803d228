// Package leakhound provides the command-line interface for the leakhound
// tool. It configures subcommands (scan, verify, patterns), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/leakhound/leakhound/cmd/leakhound"
//	func main() { leakhound.Execute() }
package leakhound
