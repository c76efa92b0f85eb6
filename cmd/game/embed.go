package main

import "embed"

// configFS holds the stock content shipped with the binary
//
//go:embed configs
var configFS embed.FS
