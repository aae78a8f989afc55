package main

import (
	"fmt"
	"os"
	"rewarder/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("rewarder run into an error: %s", err)
		os.Exit(1)
	}
}
