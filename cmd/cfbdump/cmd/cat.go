package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func defineCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "cat <file> <stream-path>",
		Short:        "Write a stream's raw bytes to stdout",
		Long:         "stream-path is a slash-separated sequence of storage names ending in a stream name, e.g. ObjectPool/WordDocument",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         runCat,
	}
}

func runCat(cmd *cobra.Command, args []string) error {
	r, f, err := openReader(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	path := strings.Split(args[1], "/")
	data, err := r.OpenStream(path)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
