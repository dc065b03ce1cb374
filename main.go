package main

import "github.com/nikogura/portfolio-prioritizer/cmd"

func main() {
	cmd.Execute()
}
