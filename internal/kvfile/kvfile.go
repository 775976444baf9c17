// Package kvfile reads and writes the flat labelled text format used for
// save slots and legacy configuration files.
//
// A file is a sequence of sections. A section starts with a label line, which
// is the label wrapped in double quotes, and continues with data lines up to
// the next label line:
//
//	"Score"
//	1200
//	"Map"
//	1 1 1 1 1
//	1 0 0 3 1
//
// Labels are matched case-insensitively with surrounding whitespace ignored.
// Lines before the first label and blank lines are ignored.
package kvfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Section is one label and its data lines.
type Section struct {
	Label string
	Lines []string
}

// File is an in-memory labelled file. The zero value is an empty file.
type File struct {
	sections []Section
}

// Parse reads a labelled file from r. A line longer than 1 MiB, or any other
// failure of r, yields an *Error of kind ErrMalformed.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Section
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if label, ok := parseLabel(line); ok {
			f.sections = append(f.sections, Section{Label: label})
			current = &f.sections[len(f.sections)-1]
			continue
		}
		if line == "" || current == nil {
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Kind: ErrMalformed, Cause: err}
	}
	return f, nil
}

// Read opens and parses the file at path.
// A missing or unreadable file yields an *Error of kind ErrOpen, content
// Parse rejects one of kind ErrMalformed.
func Read(path string) (*File, error) {
	fh, err := os.Open(expandHome(path))
	if err != nil {
		return nil, &Error{Kind: ErrOpen, Cause: err}
	}
	defer fh.Close()

	return Parse(fh)
}

// Labels returns the section labels in file order.
func (f *File) Labels() []string {
	labels := make([]string, 0, len(f.sections))
	for _, s := range f.sections {
		labels = append(labels, s.Label)
	}
	return labels
}

// Lines returns the data lines stored under label.
func (f *File) Lines(label string) ([]string, error) {
	s := f.find(label)
	if s == nil {
		return nil, &Error{Label: label, Kind: ErrLabelNotFound}
	}
	if len(s.Lines) == 0 {
		return nil, &Error{Label: label, Kind: ErrNoData}
	}
	out := make([]string, len(s.Lines))
	copy(out, s.Lines)
	return out, nil
}

// String returns the data under label joined with newlines.
func (f *File) String(label string) (string, error) {
	lines, err := f.Lines(label)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Int returns the single integer stored under label.
func (f *File) Int(label string) (int, error) {
	text, err := f.String(label)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(text)
	if len(fields) != 1 {
		return 0, &Error{Label: label, Kind: ErrNotInteger}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, &Error{Label: label, Kind: ErrNotInteger, Cause: err}
	}
	return n, nil
}

// Set replaces the data under label, appending a new section if the label is
// not present yet.
func (f *File) Set(label string, lines ...string) {
	data := make([]string, 0, len(lines))
	for _, l := range lines {
		data = append(data, strings.Split(l, "\n")...)
	}
	if s := f.find(label); s != nil {
		s.Lines = data
		return
	}
	f.sections = append(f.sections, Section{Label: strings.TrimSpace(label), Lines: data})
}

// SetInt stores a single integer under label.
func (f *File) SetInt(label string, v int) {
	f.Set(label, strconv.Itoa(v))
}

// WriteTo writes the file in labelled format.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, s := range f.sections {
		c, err := fmt.Fprintf(bw, "\"%s\"\n", s.Label)
		n += int64(c)
		if err != nil {
			return n, err
		}
		for _, line := range s.Lines {
			c, err := fmt.Fprintln(bw, line)
			n += int64(c)
			if err != nil {
				return n, err
			}
		}
	}
	return n, bw.Flush()
}

// Save writes the file to path, creating parent directories as needed.
// The content is written to a temporary file and renamed into place.
func (f *File) Save(path string) error {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("kvfile: cannot create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".kvfile-*")
	if err != nil {
		return fmt.Errorf("kvfile: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("kvfile: cannot write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kvfile: cannot write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("kvfile: cannot replace %s: %w", path, err)
	}
	return nil
}

// Update applies fn to the file at path and writes it back. A missing file
// starts out empty.
func Update(path string, fn func(f *File)) error {
	f, err := Read(path)
	if err != nil {
		if _, statErr := os.Stat(expandHome(path)); statErr == nil {
			return err
		}
		f = &File{}
	}
	fn(f)
	return f.Save(path)
}

func (f *File) find(label string) *Section {
	key := normalize(label)
	for i := range f.sections {
		if normalize(f.sections[i].Label) == key {
			return &f.sections[i]
		}
	}
	return nil
}

// parseLabel recognises a quoted label line.
func parseLabel(line string) (string, bool) {
	if len(line) < 2 || line[0] != '"' || line[len(line)-1] != '"' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
