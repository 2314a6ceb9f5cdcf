// Package report renders generation runs as human readable text files.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	homedir "github.com/mitchellh/go-homedir"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"github.com/tutils/lcgen/lcg"
)

const (
	timeLayout     = "2006-01-02 15:04:05"
	fileTimeLayout = "20060102_150405"
)

// ErrEmptyResult is returned when there is nothing to report.
var ErrEmptyResult = errors.New("nothing generated yet")

// Report is one generation run ready to be written out.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Params      lcg.Params
	Result      lcg.Result
}

// New wraps a finished run with a fresh run ID.
func New(p lcg.Params, res lcg.Result, now time.Time) Report {
	return Report{
		ID:          uuid.New().String(),
		GeneratedAt: now,
		Params:      p,
		Result:      res,
	}
}

// FileName returns the artifact name for a run generated at t.
func FileName(t time.Time) string {
	return "lcg_" + t.Format(fileTimeLayout) + ".txt"
}

// DefaultDir is ~/Documents.
func DefaultDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, "Documents"), nil
}

func periodText(period int) string {
	if period == lcg.PeriodNotFound {
		return fmt.Sprintf("not found within %d steps", lcg.MaxHorizon)
	}
	return fmt.Sprint(period)
}

// Write renders rep to w.
func Write(w io.Writer, rep Report) error {
	if len(rep.Result.Values) == 0 {
		return ErrEmptyResult
	}

	bw := bufio.NewWriter(w)
	p := rep.Params
	fmt.Fprintln(bw, "Pseudo-random number generator - linear congruential method")
	fmt.Fprintf(bw, "Generated at: %s\n", rep.GeneratedAt.Format(timeLayout))
	if rep.ID != "" {
		fmt.Fprintf(bw, "Run ID: %s\n", rep.ID)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Parameters:")
	fmt.Fprintf(bw, "Modulus (m): %d\n", p.Modulus())
	fmt.Fprintf(bw, "Multiplier (a): %d\n", p.Multiplier())
	fmt.Fprintf(bw, "Increment (c): %d\n", p.Increment())
	fmt.Fprintf(bw, "Seed (X0): %d\n", p.Seed())
	fmt.Fprintf(bw, "Count: %d\n", p.Count())
	fmt.Fprintf(bw, "Period: %s\n", periodText(rep.Result.Period))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Generated numbers:")
	for i, v := range rep.Result.Values {
		fmt.Fprintf(bw, "%d: %d\n", i+1, v)
	}

	return errors.Wrap(bw.Flush(), "failed to write report")
}

// Saver writes reports into a directory.
type Saver struct {
	dir string
	log *logan.Entry
}

// NewSaver returns a Saver writing into dir, or DefaultDir when dir is empty.
func NewSaver(dir string, log *logan.Entry) (*Saver, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand report dir", logan.F{"dir": dir})
	}
	return &Saver{dir: dir, log: log}, nil
}

// Dir is the directory reports are saved to.
func (s *Saver) Dir() string {
	return s.dir
}

// Save writes rep to a timestamped file and returns its path.
func (s *Saver) Save(rep Report) (string, error) {
	if len(rep.Result.Values) == 0 {
		return "", ErrEmptyResult
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create report dir", logan.F{"dir": s.dir})
	}

	path := filepath.Join(s.dir, FileName(rep.GeneratedAt))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create report file", logan.F{"path": path})
	}
	defer f.Close()

	if err := Write(f, rep); err != nil {
		return "", errors.Wrap(err, "failed to save report", logan.F{"path": path})
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close report file", logan.F{"path": path})
	}

	if s.log != nil {
		s.log.WithFields(logan.F{
			"path":   path,
			"run_id": rep.ID,
			"count":  len(rep.Result.Values),
		}).Info("report saved")
	}
	return path, nil
}
