// Package keyfile reads grouped key/value configuration files of the form
//
//	[OUTPUT=stdlog]
//	File=/var/log/messages
//	MaxSize=100K
//
// Group names are arbitrary strings (they may contain '='), keys are plain
// identifiers. Groups are reported in file order, which callers rely on for
// ordering invariants.
package keyfile

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// File is one parsed configuration file.
type File struct {
	src    *ini.File
	groups []string
}

// Open reads and parses the file at path.
func Open(path string) (*File, error) {
	src, err := ini.LoadSources(loadOptions(), path)
	if err != nil {
		return nil, fmt.Errorf("keyfile: %w", err)
	}
	return wrap(src), nil
}

// Parse parses configuration text from memory. Used by tests and by callers
// that already hold the file body.
func Parse(data []byte) (*File, error) {
	src, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		return nil, fmt.Errorf("keyfile: %w", err)
	}
	return wrap(src), nil
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		// Values may contain '.' and ',' freely; no value quoting or
		// shadowing semantics apply to this format.
		IgnoreInlineComment: true,
	}
}

func wrap(src *ini.File) *File {
	f := &File{src: src}
	for _, section := range src.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		f.groups = append(f.groups, section.Name())
	}
	return f
}

// Groups returns all group names in file order.
func (f *File) Groups() []string {
	return f.groups
}

// GetString returns the raw value of key in group, and whether it exists.
func (f *File) GetString(group, key string) (string, bool) {
	section, err := f.src.GetSection(group)
	if err != nil || !section.HasKey(key) {
		return "", false
	}
	return section.Key(key).String(), true
}

// GetInt returns the integer value of key in group. Absent or non-numeric
// values report false.
func (f *File) GetInt(group, key string) (int64, bool) {
	section, err := f.src.GetSection(group)
	if err != nil || !section.HasKey(key) {
		return 0, false
	}
	n, err := section.Key(key).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}
