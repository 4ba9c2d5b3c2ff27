// Command auctionview browses paginated auction results from the terminal.
package main

import "github.com/mkivimagi/auctionview/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
