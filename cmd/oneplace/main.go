package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/cli/migrate"
	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:   "oneplace",
		Short: "Personal knowledge base backend",
	}

	root.AddCommand(server.NewCommand())
	root.AddCommand(migrate.NewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
