// Command gossip is a terminal client for the discussion board.
//
// It keeps the signed-in credential in a token store (a file by default),
// shows the feed, posts and topics, and offers edit and delete only on
// content the signed-in user wrote.
package main

import (
	"fmt"
	"os"
)

func main() {
	if _, err := execute(os.Args[1:], nil); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
