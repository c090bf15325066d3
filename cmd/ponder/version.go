package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/ponder/version"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()

			return a.write(info, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, info.String())

				return err
			})
		},
	}
}
