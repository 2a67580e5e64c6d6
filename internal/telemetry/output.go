package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// SweepRecord is one row of a feed/kill sweep.
type SweepRecord struct {
	Feed      float64 `csv:"feed"`
	Kill      float64 `csv:"kill"`
	Steps     int     `csv:"steps"`
	MinB      float64 `csv:"min_b"`
	MaxB      float64 `csv:"max_b"`
	MeanB     float64 `csv:"mean_b"`
	StdDevB   float64 `csv:"stddev_b"`
	Diverged  bool    `csv:"diverged"`
	Patterned bool    `csv:"patterned"`
}

// ConfigWriter is implemented by configs that can persist themselves as YAML.
type ConfigWriter interface {
	WriteYAML(path string) error
}

// OutputManager writes run artifacts into a single directory.
type OutputManager struct {
	dir        string
	statsFile  *os.File
	sweepFile  *os.File
	statsHeads bool
	sweepHeads bool
}

// NewOutputManager creates dir and returns a manager for it. It returns nil
// when dir is empty (output disabled); all methods accept a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig records the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg ConfigWriter) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends rows to stats.csv, writing the header on first use.
func (om *OutputManager) WriteStats(stats []FieldStats) error {
	if om == nil || len(stats) == 0 {
		return nil
	}
	f, err := om.open(&om.statsFile, "stats.csv")
	if err != nil {
		return err
	}
	if err := marshal(stats, f, &om.statsHeads); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// WriteSweep appends rows to sweep.csv, writing the header on first use.
func (om *OutputManager) WriteSweep(records []SweepRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	f, err := om.open(&om.sweepFile, "sweep.csv")
	if err != nil {
		return err
	}
	if err := marshal(records, f, &om.sweepHeads); err != nil {
		return fmt.Errorf("writing sweep: %w", err)
	}
	return nil
}

// Close flushes and closes any open files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.statsFile, om.sweepFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	om.statsFile, om.sweepFile = nil, nil
	return firstErr
}

func (om *OutputManager) open(slot **os.File, name string) (*os.File, error) {
	if *slot != nil {
		return *slot, nil
	}
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	*slot = f
	return f, nil
}

func marshal(records interface{}, f *os.File, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}
