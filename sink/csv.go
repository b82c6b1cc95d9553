package sink

import (
	"encoding/csv"
	"os"
)

// CSV writes one output stream as comma separated rows. Not safe for
// concurrent use, matching the single pass generation model.
type CSV struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSV creates (or truncates) the file at path.
func NewCSV(path string) (*CSV, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &CSV{
		file:   file,
		writer: csv.NewWriter(file),
	}, nil
}

// Write appends one row. Empty fields stay empty, representing nulls.
func (c *CSV) Write(row []string) error {
	return c.writer.Write(row)
}

// Close flushes buffered rows and closes the file, surfacing any write
// error that the buffered writer held back.
func (c *CSV) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		_ = c.file.Close()
		return err
	}
	return c.file.Close()
}
