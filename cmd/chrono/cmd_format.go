package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var cultureTag string
	var cultureFile string

	cmd := &cobra.Command{
		Use:   "format <type> <pattern> <value>",
		Short: "Format a value with a pattern",
		Long: `Format a value with a pattern.

The value is given in the type's canonical text form (the ISO or round-trip
pattern) and re-formatted with the requested pattern.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := opsForType(args[0])
			if err != nil {
				return err
			}
			c, err := resolveCulture(cultureTag, cultureFile)
			if err != nil {
				return err
			}
			log.Debugf("formatting %q with pattern %q in culture %s", args[2], args[1], c.Name)
			text, err := ops.reformat(args[1], args[2], c)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&cultureTag, "culture", "", "BCP-47 culture tag (default: invariant)")
	cmd.Flags().StringVar(&cultureFile, "culture-file", "", "load culture data from a TOML or YAML file")

	return cmd
}
