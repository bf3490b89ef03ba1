package main

import "github.com/MeKo-Tech/paletteedit/internal/cmd"

func main() {
	cmd.Execute()
}
