package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/pelletier/go-toml/v2"

	"github.com/hsiuhsiu/ffibench-go/internal/harness"
)

// ErrUnknownFormat is returned for results files that are neither .json nor
// .toml, optionally followed by .gz.
var ErrUnknownFormat = errors.New("report: unknown results format")

// Format is a results file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

const gzipExt = ".gz"

func compressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), gzipExt)
}

// FormatOf picks the encoding from the file extension. A trailing .gz is
// ignored.
func FormatOf(path string) (Format, error) {
	ext := path
	if compressed(path) {
		ext = strings.TrimSuffix(path, filepath.Ext(path))
	}
	switch strings.ToLower(filepath.Ext(ext)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Encode serialises res in the given format.
func Encode(res *harness.Results, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(res); err != nil {
			return nil, fmt.Errorf("marshal TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Decode parses a results document.
func Decode(data []byte, f Format) (*harness.Results, error) {
	var res harness.Results
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("unmarshal TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return &res, nil
}

// Save writes res to path, encoded by the file extension. Paths ending in .gz
// are gzip-compressed.
func Save(path string, res *harness.Results) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(res, f)
	if err != nil {
		return err
	}
	if compressed(path) {
		if data, err = gzipBytes(data); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads a results file written by Save.
func Load(path string) (*harness.Results, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- callers validate path
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	if compressed(path) {
		if data, err = gunzipBytes(data); err != nil {
			return nil, err
		}
	}
	return Decode(data, f)
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress results: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress results: %w", err)
	}
	return buf.Bytes(), nil
}

func gunzipBytes(data []byte) ([]byte, error) {
	zr, err := pgzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress results: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress results: %w", err)
	}
	return out, nil
}
