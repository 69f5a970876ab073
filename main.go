// file:sfx/main.go
package main

import "github.com/rskv-p/sfx/cmd"

func main() {
	cmd.Execute()
}
