package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user/crush-cli/pkg/execx"
	"github.com/user/crush-cli/pkg/timeutil"
	"github.com/user/crush-cli/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe <input>",
	Short: "Print the duration of a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		p := probe.New(e.Tools.FFprobe, execx.NewRunner(e.Logger))
		sec, err := p.Duration(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", filepath.Base(args[0]), timeutil.FormatTime(sec))
		for _, line := range probe.DurationReport(sec) {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
