package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCapacityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <input-image>",
		Short: "Show how many message bytes an image can carry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			c, err := e.CapacityOf(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s: %dx%d pixels, %d bits, up to %d bytes\n",
				args[0], c.Width, c.Height, c.Bits, c.MaxBytes)
			return nil
		},
	}
}
