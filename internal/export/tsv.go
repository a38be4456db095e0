// Package export writes one capture's series as flat tab-separated text.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mindwire/eegctl/internal/timeseries"
)

// Export file names inside one label directory.
const (
	RawEegFile      = "raw_eeg.txt"
	PowerLevelsFile = "power_levels.txt"
)

// Save writes a capture snapshot as two TSV files under dir. Both files
// are staged in a temporary sibling directory which is renamed into
// place, so an aborted or failed export commits nothing.
func Save(dir string, snap timeseries.Snapshot) error {
	dir = filepath.Clean(dir)
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", parent, err)
	}

	staged, err := os.MkdirTemp(parent, ".eegctl-staged-")
	if err != nil {
		return fmt.Errorf("export: stage dir: %w", err)
	}
	defer os.RemoveAll(staged)

	if err := writeFile(filepath.Join(staged, RawEegFile), func(w io.Writer) error {
		return WriteRawSamples(w, snap.RawSamples)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(staged, PowerLevelsFile), func(w io.Writer) error {
		return WritePowerRecords(w, snap.PowerRecords)
	}); err != nil {
		return err
	}

	if err := os.Rename(staged, dir); err != nil {
		return fmt.Errorf("export: commit %s: %w", dir, err)
	}
	return nil
}

// WriteRawSamples renders the raw amplitude series: a commented header
// line, then one "%.6f\t%d" row per sample.
func WriteRawSamples(w io.Writer, samples []timeseries.RawSample) error {
	if _, err := fmt.Fprintln(w, "#timestamp\trawEeg"); err != nil {
		return err
	}
	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "%.6f\t%d\n", s.Timestamp, s.Amplitude); err != nil {
			return err
		}
	}
	return nil
}

// WritePowerRecords renders the power-band series: a commented header
// line, then ten tab-separated fields per record with the timestamp at
// six decimal places.
func WritePowerRecords(w io.Writer, records []timeseries.PowerBandRecord) error {
	header := "#timestamp\tpoorSignalLevel\tlowAlpha\thighAlpha\tlowBeta\thighBeta\tlowGamma\thighGamma\tattention\tmeditation"
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%.6f\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.Timestamp, r.PoorSignalLevel,
			r.LowAlpha, r.HighAlpha, r.LowBeta, r.HighBeta, r.LowGamma, r.HighGamma,
			r.Attention, r.Meditation,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := render(w); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("export: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
