package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/config"
	"github.com/user/crush-cli/mpv"
	"github.com/user/crush-cli/pkg/quality"
	"github.com/user/crush-cli/pkg/timeutil"
)

// cutFlags are the raw flag values of 'crush cut'. Empty strings mean "use the stored setting".
type cutFlags struct {
	start   string
	end     string
	quality string
	out     string
	name    string
	zip     bool
	zipSet  bool
	entire  bool
	preview bool
}

var cutCmd = &cobra.Command{
	Use:   "cut <input>",
	Short: "Cut a segment of a video into a new MP4",
	Long: `Cut the part of <input> between --start and --end into <out>/<name>.mp4.

Times are H:M:S, M:S or plain seconds ("0:1:30", "1:30", "90"). Each component is
passed to ffmpeg as typed. Use --entire to keep the whole video.

Quality presets: ` + strings.Join(quality.Keys(), ", ") + `.`,
	Example: `  crush cut match.mov --start 0:0:10 --end 0:1:0 --quality high
  crush cut match.mov --entire --quality low --zip --out ~/clips`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cutFlags{}
		f.start, _ = cmd.Flags().GetString("start")
		f.end, _ = cmd.Flags().GetString("end")
		f.quality, _ = cmd.Flags().GetString("quality")
		f.out, _ = cmd.Flags().GetString("out")
		f.name, _ = cmd.Flags().GetString("name")
		f.zip, _ = cmd.Flags().GetBool("zip")
		f.zipSet = cmd.Flags().Changed("zip")
		f.entire, _ = cmd.Flags().GetBool("entire")
		f.preview, _ = cmd.Flags().GetBool("preview")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		req, err := buildRequest(args[0], f, e.Settings)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out, err := runWithBar(ctx, e.Processor(), req)
		if err != nil {
			return err
		}

		if f.preview {
			return previewClip(ctx, out.Result.Path)
		}
		return nil
	},
}

// buildRequest merges flags over stored settings.
func buildRequest(input string, f cutFlags, s config.Settings) (clip.Request, error) {
	q, err := s.QualitySelection()
	if err != nil {
		return clip.Request{}, err
	}
	if f.quality != "" {
		if q, err = quality.Parse(f.quality); err != nil {
			return clip.Request{}, err
		}
	}

	outDir := s.OutputDir
	if f.out != "" {
		outDir = f.out
	}
	zip := s.Zip
	if f.zipSet {
		zip = f.zip
	}

	if input != "" {
		if abs, err := filepath.Abs(input); err == nil {
			input = abs
		}
	}

	start, err := timeutil.SplitClock(f.start)
	if err != nil {
		return clip.Request{}, &clip.ValidationError{Msg: "Invalid start time.", Err: err}
	}
	end, err := timeutil.SplitClock(f.end)
	if err != nil {
		return clip.Request{}, &clip.ValidationError{Msg: "Invalid end time.", Err: err}
	}

	return clip.Request{
		Input:      input,
		OutputDir:  outDir,
		OutputName: f.name,
		Start:      start,
		End:        end,
		Quality:    q,
		Zip:        zip,
		Entire:     f.entire,
	}, nil
}

// runWithBar runs req while an indeterminate spinner on stderr shows the current
// stage. Status lines go to stdout.
func runWithBar(ctx context.Context, p *clip.Processor, req clip.Request) (clip.Outcome, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(clip.StageValidating.String()),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	out, err := p.Run(ctx, req, func(e clip.Event) {
		if e.Transition {
			bar.Describe(e.Stage.String())
			return
		}
		_ = bar.Clear()
		fmt.Println(e.String())
	})
	close(done)
	_ = bar.Finish()
	return out, err
}

func previewClip(ctx context.Context, path string) error {
	wait, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := mpv.Open(wait, path)
	if err != nil {
		return fmt.Errorf("failed to launch mpv: %w", err)
	}
	if d, ok := p.Duration(); ok {
		fmt.Printf("Previewing %s (duration: %s)\n", filepath.Base(path), timeutil.FormatTime(d))
	} else {
		fmt.Printf("Previewing %s\n", filepath.Base(path))
	}
	return p.Wait()
}

func init() {
	cutCmd.Flags().StringP("start", "s", "", "start time, H:M:S")
	cutCmd.Flags().StringP("end", "e", "", "end time, H:M:S")
	cutCmd.Flags().StringP("quality", "q", "", "quality preset (default from config)")
	cutCmd.Flags().StringP("out", "o", "", "output directory (default from config)")
	cutCmd.Flags().StringP("name", "n", "", "output file name without extension (default crushed-video-<timestamp>)")
	cutCmd.Flags().BoolP("zip", "z", false, "also write <name>.zip next to the clip")
	cutCmd.Flags().Bool("entire", false, "cut the whole video, ignoring --start and --end")
	cutCmd.Flags().BoolP("preview", "p", false, "open the result in mpv")
	rootCmd.AddCommand(cutCmd)
}
