package kyero

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ParseError reports a source that could not be read as a Kyero V3 feed.
// It is fatal: the run cannot continue without a parsed feed.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads and decodes a Kyero V3 feed from a file path.
func Parse(path string) (*Feed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	defer f.Close()

	return ParseReader(path, f)
}

// ParseReader decodes a Kyero V3 feed. source is used for error reporting.
func ParseReader(source string, r io.Reader) (*Feed, error) {
	var feed Feed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if len(feed.Properties) == 0 {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("document contains no <property> elements")}
	}
	return &feed, nil
}

// Fetch retrieves a feed over HTTP and parses it.
func Fetch(ctx context.Context, client *http.Client, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ParseError{Source: url, Err: err}
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &ParseError{Source: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ParseError{Source: url, Err: fmt.Errorf("bad status: %s", resp.Status)}
	}

	return ParseReader(url, resp.Body)
}

// Load parses a feed from either a local path or an HTTP(S) URL.
func Load(ctx context.Context, client *http.Client, source string) (*Feed, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return Fetch(ctx, client, source)
	}
	return Parse(source)
}
