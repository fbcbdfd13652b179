// Package main provides the phonebook CLI.
package main

import "github.com/Makzui/phone-book/internal/cli"

func main() {
	cli.Execute()
}
