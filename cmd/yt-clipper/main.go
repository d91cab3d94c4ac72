package main

import "github.com/ytget/yt-clipper/internal/cli"

func main() {
	cli.Execute()
}
