package main

import "github.com/Pjt727/classboard/cmd"

func main() {
	cmd.Execute()
}
