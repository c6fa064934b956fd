package is24

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports an output document that could not be produced. It is
// fatal: a run without its output feed is a failed run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// feedDocument wraps all records of a run in one container that carries the
// namespace declarations.
type feedDocument struct {
	XMLName xml.Name `xml:"realestates:realEstates"`
	nsAttrs
	Records []any
}

// WriteFeed serializes the records, in input order, into a single
// ImmoScout24 XML document at path.
func WriteFeed(path string, records []*RealEstate) error {
	doc := feedDocument{nsAttrs: standaloneNS()}
	for _, rec := range records {
		el, err := BuildElement(rec, false)
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}
		doc.Records = append(doc.Records, el)
	}

	data, err := marshalDocument(doc)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteSplit serializes each record into its own document under dir, named
// transformado_<externalId>.xml, with the namespaces declared per root.
func WriteSplit(dir string, records []*RealEstate) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}

	paths := make([]string, 0, len(records))
	for _, rec := range records {
		el, err := BuildElement(rec, true)
		if err != nil {
			return paths, &WriteError{Path: dir, Err: err}
		}
		data, err := marshalDocument(el)
		if err != nil {
			return paths, &WriteError{Path: dir, Err: err}
		}

		path := filepath.Join(dir, fmt.Sprintf("transformado_%s.xml", rec.ExternalID))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, &WriteError{Path: path, Err: err}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func marshalDocument(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	data := append([]byte(xml.Header), body...)
	return append(data, '\n'), nil
}
