package main

import (
	"fmt"
	"os"

	"txwatch/cmd"
)

func main() {
	if err := cmd.Start(os.Args[1:]); err != nil {
		fmt.Printf("txwatch run into an error: %s\n", err)
		os.Exit(1)
	}
}
