package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/milk9111/dashcore/input"
	"github.com/milk9111/dashcore/levels"
	"github.com/milk9111/dashcore/session"
	"github.com/milk9111/dashcore/telemetry"
)

var (
	flagLevel  string
	flagTicks  int
	flagDT     time.Duration
	flagInputs string
	flagTrace  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a level from a scripted input timeline",
	Long: `Run the movement core without a window.

The input timeline is a comma separated list of segments. Each segment joins
actions (left, right, up, down, jump, dash, none) with '+' and may repeat for
*N ticks. Directions are held for the whole segment; jump and dash are pressed
on its first tick.

Examples:
  dashsim run --inputs "right*30,dash,none*60"
  dashsim run --level steps.tengo --inputs "right*20,right+jump*10,right+dash" --trace out/
  dashsim run --config tuned.yaml --ticks 600 --dt 10ms`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagLevel, "level", "", "Level name (defaults to the configured level)")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to run (0 = timeline length)")
	runCmd.Flags().DurationVar(&flagDT, "dt", 0, "Tick length (0 = 1s / configured tps)")
	runCmd.Flags().StringVar(&flagInputs, "inputs", "", "Input timeline")
	runCmd.Flags().StringVar(&flagTrace, "trace", "", "Directory for a per-tick CSV trace")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	name := flagLevel
	if name == "" {
		name = cfg.Level.Name
	}
	grid, err := levels.LoadFrom(cfg.Level.Dir, name, cfg.Level.BlockSize)
	if err != nil {
		return err
	}

	timeline, err := input.ParseTimeline(flagInputs)
	if err != nil {
		return err
	}
	ticks := flagTicks
	if ticks == 0 {
		ticks = timeline.Len()
	}
	if ticks <= 0 {
		return fmt.Errorf("nothing to run: pass --ticks or --inputs")
	}
	dt := flagDT
	if dt == 0 {
		dt = cfg.Derived.Tick
	}
	if dt < 0 {
		return fmt.Errorf("--dt must be positive, got %v", dt)
	}

	rec, err := telemetry.NewFileRecorder(flagTrace)
	if err != nil {
		return err
	}
	defer rec.Close()

	sess, err := session.New(session.Options{
		Config:      cfg,
		Grid:        grid,
		Keys:        timeline,
		Recorder:    rec,
		KeepSamples: true,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	logger.Info("running", "level", name, "ticks", ticks, "dt", dt)
	for i := 0; i < ticks; i++ {
		sess.StepDuration(dt)
		timeline.Advance()
	}

	sum := sess.Telemetry.Summary()
	p := sess.PlayerState()
	logger.Info("summary",
		"ticks", sum.Samples,
		"mean_speed", fmt.Sprintf("%.2f", sum.MeanSpeed),
		"peak_speed", fmt.Sprintf("%.2f", sum.PeakSpeed),
		"dashes", sum.Dashes,
		"longest_dash", fmt.Sprintf("%.2f", sum.LongestDash),
		"grounded", fmt.Sprintf("%.0f%%", sum.GroundedRatio*100),
	)
	logger.Info("final",
		"position", fmt.Sprintf("(%.2f, %.2f)", p.Body.Position.X, p.Body.Position.Y),
		"velocity", fmt.Sprintf("(%.2f, %.2f)", p.Body.Velocity.X, p.Body.Velocity.Y),
		"dash", p.Dash.State,
		"charges", p.Dash.Charges,
	)
	if flagTrace != "" {
		logger.Info("trace written", "rows", rec.Rows(), "file", telemetry.TraceFile, "dir", flagTrace)
	}
	return nil
}
