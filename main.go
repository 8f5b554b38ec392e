package main

import "github.com/user/crush-cli/cmd"

func main() {
	cmd.Execute()
}
