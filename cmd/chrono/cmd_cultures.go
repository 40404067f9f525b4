package main

import (
	"fmt"

	"github.com/dhamidi/chrono/culture"
	"github.com/spf13/cobra"
)

func newCulturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cultures",
		Short: "List the built-in cultures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("invariant")
			for _, name := range culture.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
