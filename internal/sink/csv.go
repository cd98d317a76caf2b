// Package sink serializes concurrent scrape output into per-category CSV
// files. Each category has exactly one sink draining its channel, so no two
// writers ever touch the same file; the package-level guard additionally
// keeps any two appends from interleaving mid-record even if a target were
// ever shared.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

// writeMu is the coarse write-serialization guard, held only for the
// duration of one append.
var writeMu sync.Mutex

// CSVSink appends records for one category to one file.
type CSVSink struct {
	path string
}

// NewCSVSink builds a sink for the given output path.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Drain consumes records until the channel closes, appending each to the
// file. Write failures are logged per record and never stop the drain.
// Returns the number of records written.
func (k *CSVSink) Drain(records <-chan models.PropRecord) int {
	written := 0
	for rec := range records {
		if err := k.append(rec); err != nil {
			utils.Errorf("writing record %s to %s: %v", rec.PlayerName, k.path, err)
			continue
		}
		written++
	}
	utils.Debugf("sink drained: %d record(s) -> %s", written, k.path)
	return written
}

// append writes one row, creating the file with its header row first. The
// open/write/close cycle per record keeps partial output durable if the
// producing worker dies mid-run.
func (k *CSVSink) append(rec models.PropRecord) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(k.path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	_, statErr := os.Stat(k.path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(k.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(models.CSVHeader()); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write(rec.Row()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	return w.Error()
}
