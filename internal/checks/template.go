package checks

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
)

type Escape int

const (
	// EscapeShell quotes string arguments for /bin/sh.
	EscapeShell Escape = iota
	// EscapeURL percent-encodes string arguments, for checks issued over HTTP.
	EscapeURL
)

var placeholderRegexp = regexp.MustCompile(`\{(\d+)\}`)

// escapeArg converts one argument to its command text. Only strings are
// escaped; numbers and booleans are rendered as is.
func escapeArg(arg any, mode Escape) string {
	s, ok := arg.(string)
	if !ok {
		return fmt.Sprint(arg)
	}

	switch mode {
	case EscapeURL:
		return urlQuote(s)
	default:
		return shellescape.Quote(s)
	}
}

var urlQuoteReplacer = strings.NewReplacer("+", "%20", "%2F", "/", "~", "%7E")

// urlQuote percent-encodes s but keeps "/" readable so URIs stay usable.
// The result contains no shell metacharacters.
func urlQuote(s string) string {
	return urlQuoteReplacer.Replace(url.QueryEscape(s))
}

// Render escapes every argument and substitutes it into the {N} placeholders
// of template. Substitution is a single pass, escaped text is never re-read.
func Render(template string, mode Escape, args ...any) (string, error) {
	escaped := make([]string, len(args))
	for i, arg := range args {
		escaped[i] = escapeArg(arg, mode)
	}

	var renderErr error
	out := placeholderRegexp.ReplaceAllStringFunc(template, func(token string) string {
		idx, err := strconv.Atoi(token[1 : len(token)-1])
		if err != nil || idx >= len(escaped) {
			if renderErr == nil {
				renderErr = fmt.Errorf("placeholder %s has no argument (got %d)", token, len(escaped))
			}
			return token
		}
		return escaped[idx]
	})
	if renderErr != nil {
		return "", renderErr
	}

	return out, nil
}
