// Package table persists named tables as delimited text files, one row per
// line. There is no indexing and no escaping: a field must not contain the
// delimiter, and every query is a full scan by the caller.
package table

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type Store struct {
	dir   string
	ext   string
	delim string
}

func NewStore(dir, ext, delim string) *Store {
	return &Store{dir: dir, ext: ext, delim: delim}
}

// Delimiter returns the field delimiter rows are joined with.
func (s *Store) Delimiter() string { return s.delim }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+s.ext)
}

// Read returns all rows of the named table in file order. An absent table
// is an empty table, not an error. Blank lines are skipped.
func (s *Store) Read(name string) ([][]string, error) {
	file, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "table.Read(%s)", name)
	}
	defer file.Close()

	// rows can be arbitrarily long (message bodies are unbounded), so read
	// whole lines instead of scanning with a token size limit
	var rows [][]string
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if trimmed := strings.TrimSuffix(line, "\n"); trimmed != "" {
			rows = append(rows, strings.Split(trimmed, s.delim))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "table.Read(%s)", name)
		}
	}
	return rows, nil
}

// Write replaces the table's persisted contents entirely with rows,
// preserving row and field order. The rewrite goes through a temp file
// renamed into place so a failed write never truncates the table.
func (s *Store) Write(name string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "table.Write(%s)", name)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "table.Write(%s)", name)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, row := range rows {
		if _, err := w.WriteString(strings.Join(row, s.delim) + "\n"); err != nil {
			tmp.Close()
			return errors.Wrapf(err, "table.Write(%s)", name)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "table.Write(%s)", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "table.Write(%s)", name)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return errors.Wrapf(err, "table.Write(%s)", name)
	}
	return nil
}

// Append adds one row at the end of the table without reading the rest.
func (s *Store) Append(name string, row []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "table.Append(%s)", name)
	}
	file, err := os.OpenFile(s.path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "table.Append(%s)", name)
	}
	defer file.Close()

	if _, err := file.WriteString(strings.Join(row, s.delim) + "\n"); err != nil {
		return errors.Wrapf(err, "table.Append(%s)", name)
	}
	return nil
}
