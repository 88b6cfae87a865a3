// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

// Saving and loading vectors as CSV text, one name,x,y,z record per line.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"minimat/value"
)

// Save writes the defined vectors to the named file, replacing its contents.
func (c *Context) Save(file string) error {
	fd, err := os.Create(file)
	if err != nil {
		return value.Errorf("save: %s", err)
	}
	buf := bufio.NewWriter(fd)
	err = c.Write(buf)
	if err == nil {
		err = buf.Flush()
	}
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return value.Errorf("save: %s", err)
	}
	return nil
}

// Write writes a record for each defined vector, in name order.
func (c *Context) Write(out io.Writer) error {
	for i, v := range c.store.Defined() {
		name := c.Name(i)
		if name == "" {
			continue
		}
		_, err := fmt.Fprintf(out, "%s,%s,%s,%s\n", name, formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
		if err != nil {
			return err
		}
	}
	return nil
}

// formatFloat returns the shortest decimal text that parses back to f.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Load reads vectors from the named file into the store. Vectors not
// mentioned in the file keep their values. It returns the number of
// records loaded.
func (c *Context) Load(file string) (int, error) {
	fd, err := os.Open(file)
	if err != nil {
		return 0, value.Errorf("load: %s", err)
	}
	defer fd.Close()
	return c.Read(fd)
}

// record is one parsed line of a saved file.
type record struct {
	index int
	value value.Vector
}

// Read reads records from r. Lines that are not a valid name followed by
// three numbers are skipped. The input is read completely before any
// vector is assigned, so a read error leaves the store unchanged.
func (c *Context) Read(r io.Reader) (int, error) {
	var records []record
	reader := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return 0, value.Errorf("load: %s", err)
		}
		if text == "" && err == io.EOF {
			break
		}
		rec, ok := c.parseRecord(strings.TrimSuffix(text, "\n"))
		if ok {
			records = append(records, rec)
		} else {
			c.logger().Debug("load: skipping line", zap.Int("line", line))
		}
		if err == io.EOF {
			break
		}
	}
	for _, rec := range records {
		if err := c.store.Set(rec.index, rec.value); err != nil {
			return 0, fmt.Errorf("load: %w", err)
		}
	}
	return len(records), nil
}

func (c *Context) parseRecord(text string) (record, bool) {
	fields := strings.Split(text, ",")
	if len(fields) != 4 {
		return record{}, false
	}
	index, err := c.Index(strings.TrimSpace(fields[0]))
	if err != nil {
		return record{}, false
	}
	var xyz [3]float64
	for i, f := range fields[1:] {
		xyz[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return record{}, false
		}
	}
	return record{index, value.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, true
}
