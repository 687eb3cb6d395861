package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	designpattern "github.com/chriskaliX/coffee-decorator/Design-Pattern"
)

func newMenuCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List the addons a coffee can be wrapped with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			menu := designpattern.Menu()
			out := cmd.OutOrStdout()
			if asYAML {
				data, err := yaml.Marshal(menu)
				if err != nil {
					return fmt.Errorf("marshaling menu: %w", err)
				}
				_, err = out.Write(data)
				return err
			}
			for _, item := range menu {
				_, _ = fmt.Fprintf(out, "%-10s +%s  %q\n", item.Name, designpattern.FormatPrice(item.Delta), item.Suffix)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the menu as YAML")
	return cmd
}
