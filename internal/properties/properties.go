// Package properties loads the optional NETWORK_PROPERTIES file: one
// "key := value" pair per line.
//
// Overview:
//   - Responsibility: Parse key/value pairs, keep their first-seen order
//   - Key Types: Properties (ordered mapping)
//   - Concurrency Model: Built once per run, read-only afterwards
//   - Error Semantics: A missing file is not an error; a line without exactly
//     one ":=" is a CodeInvalidArgument error
//   - Performance Notes: Single pass, map-backed lookup
//
// Usage:
//
//	props, err := properties.Load("NETWORK_PROPERTIES", logger)
//	for _, key := range props.Keys() {
//	    value, _ := props.Get(key)
//	}
package properties

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/core/log"
)

// Separator divides key from value.
const Separator = ":="

// Properties is an ordered string mapping. Setting an existing key replaces
// its value and keeps its original position.
type Properties struct {
	keys   []string
	values map[string]string
}

// New returns an empty Properties.
func New() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set stores value under key.
func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in first-seen order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Load reads the properties file at path. An empty path or a file that does
// not exist yields an empty mapping and a warning.
func Load(path string, logger log.Logger) (*Properties, error) {
	logger = log.OrNop(logger)

	if path == "" {
		logger.Warn("no network properties found, skipping")
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("no network properties found, skipping", log.Str("path", path))
			return New(), nil
		}
		return nil, errors.Wrapf(errors.CodeInternal, "properties.Load", err, "cannot open %s", path)
	}
	defer f.Close()

	props, err := Parse(f)
	if err != nil {
		logger.Error(err, "malformed properties file", log.Str("path", path))
		return nil, err
	}

	logger.Debug("loaded network properties", log.Str("path", path), log.Int("count", props.Len()))
	return props, nil
}

// Parse reads "key := value" lines from r. Blank lines are skipped; keys and
// values are trimmed; the last value for a repeated key wins.
func Parse(r io.Reader) (*Properties, error) {
	props := New()
	br := bufio.NewReader(r)

	line := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.CodeInternal, "properties.Parse", err)
		}
		if raw == "" && err == io.EOF {
			break
		}
		line++
		text := strings.TrimSpace(raw)
		if text == "" {
			if err == io.EOF {
				break
			}
			continue
		}

		if n := strings.Count(text, Separator); n != 1 {
			return nil, malformed(line, text, "expected exactly one %q, found %d", Separator, n)
		}

		key, value, _ := strings.Cut(text, Separator)
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, malformed(line, text, "empty key")
		}
		props.Set(key, strings.TrimSpace(value))
		if err == io.EOF {
			break
		}
	}
	return props, nil
}

func malformed(line int, text, format string, args ...any) error {
	return errors.Build(errors.CodeInvalidArgument).
		WithOp("properties.Parse").
		WithMsgf("line %d: "+format, append([]any{line}, args...)...).
		WithDetails(text).
		Err()
}
