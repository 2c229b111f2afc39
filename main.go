package main

import "github.com/KaramelBytes/wealth360-cli/cmd"

func main() {
	cmd.Execute()
}
