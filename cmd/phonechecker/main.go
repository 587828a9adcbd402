package main

import (
	"context"
	"os"
)

const serviceName = "phonechecker"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
