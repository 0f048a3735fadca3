package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func defineListCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list <file>",
		Short:        "List the name of every stream and storage in the container",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	r, f, err := openReader(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	for _, name := range r.ListStorage() {
		fmt.Printf("storage  %s\n", name)
	}
	for _, name := range r.ListStreams() {
		fmt.Printf("stream   %s\n", name)
	}
	return nil
}
