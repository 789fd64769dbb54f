package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bft-labs/easylsb/internal/adapters/fs"
)

func newDecodeCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode <input-image>",
		Short: "Print the message hidden in an image",
		Long: `Read the message hidden in input-image and print it to standard output.

Images that were never encoded usually carry an impossible length and are
rejected. With --lenient the length is trusted as is and whatever bytes it
covers are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			msg, err := e.DecodeFile(args[0])
			if err != nil {
				return err
			}

			if output != "" {
				return fs.WriteFileAtomic(output, 0o644, func(w io.Writer) error {
					_, err := w.Write(msg)
					return err
				})
			}
			_, err = fmt.Fprintln(a.stdout, string(msg))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the raw message to a file instead of standard output")
	cmd.Flags().BoolVar(&a.cfg.Lenient, "lenient", a.cfg.Lenient, "trust the embedded length even if it exceeds the image capacity")
	return cmd
}
