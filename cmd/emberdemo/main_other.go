//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "emberdemo: the X11 demo driver is only available on linux")
	os.Exit(1)
}
