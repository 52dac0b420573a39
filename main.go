package main

import "github.com/mouse-blink/litsplice/cmd"

func main() {
	cmd.Execute()
}
