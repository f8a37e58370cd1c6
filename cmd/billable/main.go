package main

import (
	"context"
	"fmt"
	"os"

	"github.com/freelancedesk/billable/internal/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "billable: %v\n", err)
		os.Exit(1)
	}
}
