// Package main provides the togglegen CLI, which compiles option tables and
// characterization profiles into C headers and sources.
package main

func main() {
	Execute()
}
