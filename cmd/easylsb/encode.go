package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "encode <message> <input-image> <output-image>",
		Short: "Embed a message in an image",
		Long: `Embed a message in a copy of input-image and write it to output-image.

The output container follows the output file extension (.bmp or .qoi)
unless --format is given. The output is written only if the whole message
fits; an existing output file is kept unless --force is set.`,
		Args: func(cmd *cobra.Command, args []string) error {
			want := 3
			if fromFile != "" {
				want = 2
			}
			if len(args) != want {
				return fmt.Errorf("encode expects %d arguments, got %d", want, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var msg []byte
			if fromFile != "" {
				b, err := a.readMessage(fromFile)
				if err != nil {
					return err
				}
				msg = b
			} else {
				msg, args = []byte(args[0]), args[1:]
			}

			e, err := a.engine()
			if err != nil {
				return err
			}
			st, err := e.EncodeFile(msg, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "encoded %d bytes into %s (%d channels, bit depth %d)\n",
				st.Length, args[1], st.Channels, st.MaxDepth)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "read the message from a file ('-' for stdin) instead of an argument")
	cmd.Flags().BoolVar(&a.cfg.Force, "force", a.cfg.Force, "overwrite the output image if it exists")
	cmd.Flags().StringVar(&a.cfg.Format, "format", a.cfg.Format, "output container: bmp or qoi (default: from extension)")
	return cmd
}

func (a *app) readMessage(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(a.stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return b, nil
}
