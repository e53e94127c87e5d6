package main

import "github.com/lifecount/countdown-calculator/cmd"

func main() {
	cmd.Execute()
}
