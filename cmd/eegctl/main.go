package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mindwire/eegctl/internal/capture"
	"github.com/mindwire/eegctl/internal/config"
	"github.com/mindwire/eegctl/internal/export"
	"github.com/mindwire/eegctl/internal/logging"
	"github.com/mindwire/eegctl/internal/observability"
)

const defaultPrefsPath = "eegctl.toml"

// App hosts interactive state and persisted preferences for one run.
type App struct {
	reader    *bufio.Reader
	cfg       config.CaptureConfig
	prefsPath string
	prefs     prefsFile
	subject   string
}

func main() {
	var cfgPath string
	var prefsPath string
	var subject string
	flag.StringVar(&cfgPath, "config", "", "capture config path (defaults apply when empty)")
	flag.StringVar(&prefsPath, "prefs", defaultPrefsPath, "client preferences path")
	flag.StringVar(&subject, "subject", "", "subject name; one directory per subject")
	flag.Parse()

	logging.ConfigureRuntime()
	observability.InitLogger("eegctl")

	cfg, err := config.LoadCaptureConfig(cfgPath)
	if err != nil {
		log.Error().Err(err).Msg("eegctl config")
		os.Exit(1)
	}

	app := NewApp(cfg, prefsPath, subject)
	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("eegctl failed")
		os.Exit(1)
	}
}

func NewApp(cfg config.CaptureConfig, prefsPath string, subject string) *App {
	return &App{
		reader:    bufio.NewReader(os.Stdin),
		cfg:       cfg,
		prefsPath: prefsPath,
		subject:   strings.TrimSpace(subject),
	}
}

// Run captures every label that has no directory yet under the subject.
func (a *App) Run() error {
	if err := a.loadPrefs(); err != nil {
		return err
	}
	if a.subject == "" {
		a.subject = strings.TrimSpace(a.prefs.DefaultSubject)
	}
	if a.subject == "" {
		return errors.New("subject name required (-subject)")
	}
	if a.cfg.StatusAddr != "" {
		observability.StartStatusServer(a.cfg.StatusAddr)
	}

	subjectDir := filepath.Join(a.cfg.OutputDir, a.subject)
	if _, err := os.Stat(subjectDir); err == nil {
		fmt.Printf("Folder for %s exists. Adding any missing labels.\n", a.subject)
	} else if err := os.MkdirAll(subjectDir, 0o755); err != nil {
		return fmt.Errorf("create subject dir: %w", err)
	}

	fmt.Printf(
		"I am going to prompt you for the following labels, %d seconds each: %s\n",
		a.cfg.CaptureSeconds,
		strings.Join(a.cfg.Labels, ", "),
	)
	log.Info().
		Str("subject", a.subject).
		Int("labels", len(a.cfg.Labels)).
		Str("addr", a.cfg.Addr).
		Msg("capture run starting")

	for _, label := range a.cfg.Labels {
		labelDir := filepath.Join(subjectDir, label)
		if _, err := os.Stat(labelDir); err == nil {
			log.Info().Str("label", label).Msg("label already captured, skipping")
			continue
		}
		if err := a.captureLabel(label, labelDir); err != nil {
			// Decode and correlation violations are fatal per label and
			// commit nothing; surface them instead of moving on.
			return fmt.Errorf("label %q: %w", label, err)
		}
	}

	a.prefs.DefaultSubject = a.subject
	return a.savePrefs()
}

// captureLabel runs one prompt/capture/confirm cycle until the subject
// accepts the take.
func (a *App) captureLabel(label string, dir string) error {
	for {
		fmt.Println()
		fmt.Printf("Please start [pretending that you are] feeling %s.\n", label)
		fmt.Printf("Capture begins in %d seconds...\n", a.cfg.LeadinSeconds)
		time.Sleep(a.cfg.Leadin())

		snap, err := capture.NewSession(a.cfg).Run()
		if err != nil {
			return err
		}

		fmt.Printf("Done. Captured %d raw samples, %d power records.\n",
			len(snap.RawSamples), len(snap.PowerRecords))
		answer, err := a.promptLine("Did you manage to hold the feeling the entire time? [y/n]")
		if err != nil {
			return err
		}
		if isYes(answer) {
			fmt.Println("Saving to file...")
			if err := export.Save(dir, snap); err != nil {
				return err
			}
			log.Info().Str("label", label).Str("dir", dir).Msg("capture saved")
			a.clearIfEnabled()
			return nil
		}
		fmt.Println("Trying again...")
	}
}

func (a *App) promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) clearIfEnabled() {
	if a.prefs.ClearScreenAfterCapture {
		fmt.Print("\033[2J\033[H")
	}
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
