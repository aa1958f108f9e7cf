package main

import "github.com/inovacc/gitai/cmd"

func main() {
	cmd.Execute()
}
