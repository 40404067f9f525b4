package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var cultureTag string
	var cultureFile string

	cmd := &cobra.Command{
		Use:   "check <type> <pattern>",
		Short: "Compile a pattern and report whether it is valid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := opsForType(args[0])
			if err != nil {
				return err
			}
			c, err := resolveCulture(cultureTag, cultureFile)
			if err != nil {
				return err
			}
			if err := ops.check(args[1], c); err != nil {
				return err
			}
			fmt.Printf("%s: valid %s pattern\n", args[1], args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&cultureTag, "culture", "", "BCP-47 culture tag (default: invariant)")
	cmd.Flags().StringVar(&cultureFile, "culture-file", "", "load culture data from a TOML or YAML file")

	return cmd
}
