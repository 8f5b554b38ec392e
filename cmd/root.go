package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/deps"
	"github.com/user/crush-cli/tui"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "crush",
	Short: "Cut a segment out of a video with ffmpeg",
	Long: `crush cuts the part of a video between a start and an end time into a new
MP4, optionally re-encoding it and zipping the result.

Run without arguments to open the interactive form, or use 'crush cut' from scripts.
ffmpeg and ffprobe are looked up in the tools/ directory beside the executable
unless --ffmpeg or 'crush config set ffmpeg' points elsewhere.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		return tui.Run(tui.Options{
			Processor: env.Processor(),
			Settings:  env.Settings,
			Logger:    env.Logger,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crush version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check external tools",
	Long:  `Check that ffmpeg and ffprobe can be found where crush will look for them, and whether mpv is available for previews.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings()
		if err != nil {
			return err
		}
		tools := resolveTools(cmd, settings)

		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true
		for _, s := range deps.CheckAll(tools) {
			switch {
			case s.Err == nil:
				fmt.Printf("✓ %s: OK (%s)\n", s.Name, s.Path)
			case s.Optional:
				fmt.Printf("- %s: not found (optional, used for previews)\n", s.Name)
				fmt.Printf("  Install from: %s\n", deps.MpvInstallURL)
			default:
				fmt.Printf("✗ %s: NOT FOUND at %s\n", s.Name, s.Path)
				fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
				allGood = false
			}
		}

		fmt.Println()
		if !allGood {
			fmt.Println("Some dependencies are missing. Place ffmpeg and ffprobe in", deps.DefaultToolsDir(), "or use --ffmpeg.")
			os.Exit(1)
		}
		fmt.Println("All dependencies are installed!")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("ffmpeg", "", "path to the ffmpeg binary (ffprobe must sit beside it)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "also write logs to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, clip.Describe(err))
		os.Exit(1)
	}
}
