package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/easylsb/internal/watcher"
	"github.com/bft-labs/easylsb/pkg/log"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <input-image>",
		Short: "Print the hidden message every time an image changes",
		Long: `Decode input-image now and again every time it is rewritten,
until interrupted. Decode failures are logged and watching continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			handler := func(ctx context.Context, path string) {
				msg, err := e.DecodeFile(path)
				if err != nil {
					a.log.Warn().Err(err).Str("path", path).Msg("decode failed")
					return
				}
				fmt.Fprintln(a.stdout, string(msg))
			}
			w := watcher.New(args[0], a.cfg.WatchDebounce, handler, log.NewZerologAdapterWithLogger(a.log))
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&a.cfg.WatchDebounce, "debounce", a.cfg.WatchDebounce, "wait this long after a change before decoding")
	cmd.Flags().BoolVar(&a.cfg.Lenient, "lenient", a.cfg.Lenient, "trust the embedded length even if it exceeds the image capacity")
	return cmd
}
