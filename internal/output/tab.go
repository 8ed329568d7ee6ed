// Package output provides enumeration output formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cancerit/rg-enumerator/internal/rgenum"
)

// TabWriter writes enumerated genome records in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"depth",
			"dup_depth",
			"wgd_depth",
			"history",
			"detailed_history",
			"cn_profile",
			"junctions",
			"fingerprint",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single enumerated genome record.
func (tw *TabWriter) Write(rec rgenum.Record) error {
	values := []string{
		strconv.Itoa(rec.Depth),
		strconv.Itoa(rec.DupDepth),
		strconv.Itoa(rec.WGDDepth),
		rec.History,
		rec.DetailedHistory,
		rec.CNProfile,
		rec.Junctions,
		rec.Fingerprint,
	}
	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
