package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"antcolony/internal/colony"
	"antcolony/internal/scenario"
	"antcolony/internal/sim"
	"antcolony/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

type discardCloser struct{ io.Writer }

func (discardCloser) Close() error { return nil }

// openLog returns the log destination. Without a path the logs go nowhere
// since stderr belongs to the screen.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return discardCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

type options struct {
	root  string
	name  string
	tick  time.Duration
	level string
}

func main() {
	root := flag.String("scenarios", "./assets/simulations", "directory holding the scenarios")
	name := flag.String("scenario", "", "scenario to run, the first one found if empty")
	tick := flag.Duration("tick", 10*time.Millisecond, "wall clock time between two simulation steps")
	logFile := flag.String("log-file", "", "file receiving the logs")
	level := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	logOut, err := openLog(*logFile)
	if err != nil {
		log.Fatalf("unable to open log file: %v", err)
	}
	opts := options{root: *root, name: *name, tick: *tick, level: *level}
	if err := run(opts, logOut, tcell.NewScreen, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns logOut and closes it before returning.
func run(opts options, logOut io.WriteCloser, newScreen func() (tcell.Screen, error), stdout io.Writer) error {
	defer logOut.Close()

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.level)); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	dir, err := scenario.Resolve(opts.root, opts.name)
	if err != nil {
		return errors.Wrap(err, "unable to find scenario")
	}
	sc, err := scenario.Load(dir, logger)
	if err != nil {
		return errors.Wrap(err, "unable to load scenario")
	}
	simulation, err := sim.New(sc, logger)
	if err != nil {
		return errors.Wrap(err, "unable to start simulation")
	}

	screen, err := newScreen()
	if err != nil {
		return errors.Wrap(err, "unable to open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "unable to open terminal")
	}

	renderer := tui.NewRenderer(tui.FitBounds(simulation.Snapshot(), 4*colony.AntLength))
	runErr := loop(screen, renderer, simulation, sc, opts.root, opts.tick, logger)
	screen.Fini()

	if runErr != nil {
		return errors.Wrap(runErr, "simulation aborted")
	}
	if distances := simulation.AverageDistances(); len(distances) > 0 {
		fmt.Fprintln(stdout, "mean distance from the optimal line, one sample per second:")
		for i, d := range distances {
			fmt.Fprintf(stdout, "%4d\t%.6f\n", i+1, d)
		}
	}
	return nil
}

func loop(
	screen tcell.Screen,
	renderer *tui.Renderer,
	simulation *sim.Simulation,
	sc *scenario.Scenario,
	root string,
	tick time.Duration,
	logger *slog.Logger,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	// only the latest snapshot matters
	frames := make(chan sim.Snapshot, 1)
	done := make(chan error, 1)
	go func() {
		done <- simulation.Run(ctx, tick, func(snap sim.Snapshot) {
			select {
			case <-frames:
			default:
			}
			frames <- snap
		})
	}()

	redraw := time.NewTicker(time.Second / 60)
	defer redraw.Stop()

	var latest *sim.Snapshot
	for {
		select {
		case err := <-done:
			return err
		case snap := <-frames:
			latest = &snap
		case <-redraw.C:
			if latest == nil {
				continue
			}
			screen.Clear()
			renderer.Draw(screen, *latest)
			screen.Show()
			latest = nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if quit := handleKey(ev, simulation, sc, root, logger); quit {
					stop()
					return <-done
				}
			}
		}
	}
}

// handleKey applies a key press and reports whether the user asked to quit.
func handleKey(ev *tcell.EventKey, simulation *sim.Simulation, sc *scenario.Scenario, root string, logger *slog.Logger) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	controls := simulation.Controls()
	switch ev.Rune() {
	case 'q':
		return true
	case ' ', 'p':
		controls.Paused = !controls.Paused
	case 'o':
		controls.OptimizePath = !controls.OptimizePath
	case '+', '=':
		controls.Speed *= 2
	case '-':
		controls.Speed /= 2
	case 's':
		dir := filepath.Join(root, fmt.Sprintf("%s-%s", sc.Name, time.Now().Format("20060102-150405")))
		if err := simulation.Save(dir); err != nil {
			logger.Error("save failed", "dir", dir, "err", err)
		}
		return false
	default:
		return false
	}
	simulation.ApplyControlSettings(controls)
	return false
}
