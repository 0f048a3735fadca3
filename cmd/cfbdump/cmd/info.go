package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func defineInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "info <file>",
		Short:        "Print the root storage's class ID and encryption status",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	r, f, err := openReader(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	root := r.Root()
	clsid := root.ClassID
	if clsid == "" {
		clsid = "(none)"
	}

	fmt.Printf("major version: %d\n", r.MajorVersion())
	fmt.Printf("sector size:   %d\n", r.SectorSize())
	fmt.Printf("root class id: %s\n", clsid)
	fmt.Printf("streams:       %d\n", len(r.ListStreams()))
	fmt.Printf("storages:      %d\n", len(r.ListStorage()))
	fmt.Printf("encrypted:     %t\n", r.IsEncrypted())
	return nil
}
