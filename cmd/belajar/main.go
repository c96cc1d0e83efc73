package main

import (
	"context"

	"github.com/faizmokh/belajar/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

