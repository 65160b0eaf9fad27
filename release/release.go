// Package release parses release identifiers of the form
// "package@version+build". The package and build parts are optional; a bare
// string is treated as a version.
package release

import (
	"errors"
	"strings"
)

var (
	ErrEmpty    = errors.New("release: empty identifier")
	ErrReserved = errors.New("release: reserved identifier")
	ErrBadChars = errors.New("release: forbidden characters")
)

// reserved names cannot be used as a whole release string because they
// collide with directory and query semantics downstream.
var reserved = map[string]struct{}{
	".": {}, "..": {}, "latest": {},
}

// Release is a parsed release identifier.
type Release struct {
	raw     string
	pkg     string
	version string
	build   string
}

// Parse validates and splits a release identifier.
func Parse(s string) (*Release, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmpty
	}
	if _, ok := reserved[s]; ok {
		return nil, ErrReserved
	}
	if strings.ContainsAny(s, "\r\n\t\\/") {
		return nil, ErrBadChars
	}
	r := &Release{raw: s}
	rest := s
	if pkg, v, ok := strings.Cut(rest, "@"); ok && pkg != "" {
		r.pkg = pkg
		rest = v
	}
	if v, build, ok := strings.Cut(rest, "+"); ok {
		r.version = v
		r.build = build
	} else {
		r.version = rest
	}
	return r, nil
}

// Raw returns the identifier as given.
func (r *Release) Raw() string { return r.raw }

// Package returns the package part, empty when the identifier has none.
func (r *Release) Package() string { return r.pkg }

// Version returns the version part without build metadata.
func (r *Release) Version() string { return r.version }

// BuildHash returns the build metadata, empty when the identifier has none.
func (r *Release) BuildHash() string { return r.build }

// Short returns the identifier without build metadata.
func (r *Release) Short() string {
	if r.pkg != "" {
		return r.pkg + "@" + r.version
	}
	return r.version
}
