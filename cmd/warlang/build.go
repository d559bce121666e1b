package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"warlang/internal/diagfmt"
	"warlang/internal/driver"
	"warlang/internal/observ"
	"warlang/internal/project"
	"warlang/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.war...]",
	Short: "Compile WarLang source files to Python",
	Long: `Build compiles WarLang sources to Python files. With no arguments it
looks for a war.toml manifest in the current directory or above and
builds the project it describes.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output file (single input only)")
	buildCmd.Flags().Bool("stdout", false, "write generated code to stdout")
	buildCmd.Flags().Bool("no-cache", false, "bypass the build cache")
	buildCmd.Flags().Int("jobs", 0, "number of parallel compilations (0 = NumCPU)")
	buildCmd.Flags().Bool("progress", false, "show per-file progress (multi-file builds on a terminal)")
	buildCmd.Flags().Bool("timings", false, "print phase timings to stderr")
}

func runBuild(cmd *cobra.Command, args []string) error {
	outputFlag, _ := cmd.Flags().GetString("output")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	jobs, _ := cmd.Flags().GetInt("jobs")
	showProgress, _ := cmd.Flags().GetBool("progress")
	showTimings, _ := cmd.Flags().GetBool("timings")

	var manifest *project.Manifest
	paths := args
	if len(paths) == 0 {
		manifestPath, ok, err := project.Find(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no input files and no %s found", project.ManifestName)
		}
		manifest, err = project.Load(manifestPath)
		if err != nil {
			return err
		}
		paths, err = manifest.SourcePaths()
		if err != nil {
			return err
		}
	}
	if outputFlag != "" && len(paths) > 1 {
		return fmt.Errorf("-o is only valid with a single input file")
	}

	opts := driver.Options{MaxDiagnostics: maxDiagnostics(cmd)}

	var cache *driver.DiskCache
	if !noCache {
		var err error
		cache, err = driver.OpenDiskCache("warlang")
		if err != nil {
			// a read-only home is not a build failure
			cache = nil
		}
	}

	timer := observ.NewTimer()
	results, err := compileAll(cmd, paths, opts, cache, jobs, timer,
		showProgress && len(paths) > 1 && !toStdout && isTerminal(os.Stderr))
	if err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
		}
		if !res.Ok() {
			failed++
			continue
		}
		phase := timer.Begin("write " + paths[i])
		err := writeOutput(paths[i], res.Output, outputFlag, toStdout, manifest)
		timer.End(phase, "")
		if err != nil {
			return err
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// compileAll builds every path, either through the disk cache one file
// at a time or concurrently when no cache is available. With withUI set
// it renders a live progress view fed by driver events.
func compileAll(cmd *cobra.Command, paths []string, opts driver.Options, cache *driver.DiskCache, jobs int, timer *observ.Timer, withUI bool) ([]*driver.Result, error) {
	var events chan driver.Event
	if withUI {
		events = make(chan driver.Event, 2*len(paths))
	}

	var results []*driver.Result
	var buildErr error
	run := func() {
		defer func() {
			if events != nil {
				close(events)
			}
		}()
		if cache == nil && len(paths) > 1 {
			phase := timer.Begin("compile batch")
			results, buildErr = driver.BuildAllEvents(cmd.Context(), paths, opts, jobs, events)
			timer.End(phase, fmt.Sprintf("%d files", len(paths)))
			return
		}
		for _, path := range paths {
			if events != nil {
				events <- driver.Event{Path: path, Stage: driver.StageLoad}
			}
			phase := timer.Begin("compile " + path)
			res, hit, err := driver.CompileCached(cache, path, opts)
			if err != nil {
				buildErr = err
				return
			}
			note := ""
			if hit {
				note = "cached"
			}
			timer.End(phase, note)
			if events != nil {
				events <- driver.Event{Path: path, Stage: res.Stage, Done: true, Ok: res.Ok()}
			}
			results = append(results, res)
		}
	}

	if !withUI {
		run()
		return results, buildErr
	}

	go run()
	prog := tea.NewProgram(ui.NewBuildModel("warlang build", paths, events),
		tea.WithOutput(os.Stderr))
	if _, err := prog.Run(); err != nil {
		return nil, err
	}
	return results, buildErr
}

func writeOutput(srcPath, output, outputFlag string, toStdout bool, manifest *project.Manifest) error {
	if toStdout {
		_, err := os.Stdout.WriteString(output)
		return err
	}

	outPath := outputFlag
	if outPath == "" {
		if manifest != nil {
			outPath = manifest.OutputPath(srcPath)
		} else {
			outPath = strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".py"
		}
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(outPath, []byte(output), 0o644)
}
