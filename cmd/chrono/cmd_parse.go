package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var cultureTag string
	var cultureFile string

	cmd := &cobra.Command{
		Use:   "parse <type> <pattern> <text>",
		Short: "Parse text with a pattern and print the value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := opsForType(args[0])
			if err != nil {
				return err
			}
			c, err := resolveCulture(cultureTag, cultureFile)
			if err != nil {
				return err
			}
			log.Debugf("parsing %q with pattern %q in culture %s", args[2], args[1], c.Name)
			value, err := ops.parse(args[1], args[2], c)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}

	cmd.Flags().StringVar(&cultureTag, "culture", "", "BCP-47 culture tag (default: invariant)")
	cmd.Flags().StringVar(&cultureFile, "culture-file", "", "load culture data from a TOML or YAML file")

	return cmd
}
