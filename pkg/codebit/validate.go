// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"net/url"
	"regexp"
	"slices"

	"github.com/filemeta/codebit/pkg/semver"
	"github.com/filemeta/codebit/pkg/validation"
)

const (
	rxDomainName = `(?:[A-Za-z0-9_-]+)(?:\.[A-Za-z0-9_-]+)+`
	rxFilename   = `[^/\\><|:&"*? \r\n]{1,128}`
)

// nameRegex matches a domain followed by zero or more directories and a filename.
var nameRegex = regexp.MustCompile(`^(?:` + rxDomainName + `)(?:/` + rxFilename + `)*/(` + rxFilename + `)$`)

type (
	// ValidateOption configures Validate.
	ValidateOption func(*validateConfig)

	validateConfig struct {
		localFilename    string
		hasLocalFilename bool
	}
)

// WithLocalFilename cross-checks the final segment of filename, which may be a
// path using '/', '\' or ':' separators, against the final segment of the name.
func WithLocalFilename(filename string) ValidateOption {
	return func(c *validateConfig) {
		c.localFilename = filename
		c.hasLocalFilename = true
	}
}

// Validate grades the record against the CodeBit rules. The record is not
// modified.
func (r *Record) Validate(opts ...ValidateOption) validation.Result {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var rep validation.Report

	// The type tag is required for IsCodeBit yet graded as recommended here.
	if at := r.AtType(); at != TypeSoftwareSourceCode {
		rep.Recommended("Property '_type' (or '@type' in a directory) should be '%s' but is '%s'.", TypeSoftwareSourceCode, at)
	}
	if len(r.typeValues()) > 1 {
		rep.Recommended("Property '_type' (or '@type' in a directory) has multiple values. Should have one value of '%s'.", TypeSoftwareSourceCode)
	}

	if r.requiredSingle(&rep, KeyName) && !nameRegex.MatchString(r.Name()) {
		rep.Mandatory("Property 'name' must be a domain name followed by a file path.")
	}

	if r.requiredSingle(&rep, KeyVersion) {
		level, _, diags := semver.TryParse(r.Value(KeyVersion))
		switch level {
		case semver.Invalid:
			rep.Mandatory("Property 'version' is not a valid semantic version.")
		case semver.Tolerable:
			rep.Recommended("Property 'version' is not in canonical semantic version form.")
		}
		if level != semver.Valid {
			for _, d := range diags {
				rep.Note("'version' property: %s", d)
			}
		}
	}

	if r.requiredSingle(&rep, KeyURL) {
		u, err := url.Parse(r.URL())
		if err != nil || !u.IsAbs() || u.Host == "" {
			rep.Mandatory("'url' property is not a valid URL.")
		}
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			rep.Mandatory("'url' scheme is not http or https.")
		}
	}

	if !slices.Contains(r.Keywords(), KeywordCodeBit) {
		rep.Mandatory("Property '%s' must include '%s'.", KeyKeywords, KeywordCodeBit)
	}

	if cfg.hasLocalFilename {
		bareName := lastSegment(r.Name(), "/")
		bareFile := lastSegment(cfg.localFilename, `/\:`)
		if bareName != bareFile {
			rep.Mandatory("Local filename '%s' does not match CodeBit name '%s'.", bareFile, bareName)
		}
	}

	if r.optionalSingle(&rep, KeyDatePublished) && r.DatePublished().IsZero() {
		rep.Recommended("Property 'datePublished' is an invalid format. Must be RFC 3339.")
	}
	r.optionalSingle(&rep, KeyAuthor)
	r.optionalSingle(&rep, KeyDescription)
	r.optionalSingle(&rep, KeyLicense)

	return rep.Result()
}

// requiredSingle reports whether key holds exactly one value, recording a
// mandatory failure when it is absent and a recommended one when repeated.
func (r *Record) requiredSingle(rep *validation.Report, key string) bool {
	switch n := r.Count(key); {
	case n == 0:
		rep.Mandatory("Property '%s' is required but not present.", key)
		return false
	case n > 1:
		rep.Recommended("Multiple instances of property '%s'. Only one expected.", key)
		return false
	}
	return true
}

func (r *Record) optionalSingle(rep *validation.Report, key string) bool {
	switch n := r.Count(key); {
	case n == 0:
		return false
	case n > 1:
		rep.Recommended("Multiple instances of property '%s'. Only one expected.", key)
		return false
	}
	return true
}
