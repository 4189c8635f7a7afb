package codec

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cottand/spaces/space"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var Formats = []Format{JSON, YAML, TOML}

// ParseFormat accepts a format name, case-insensitively, and the "yml" alias
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case JSON, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", errors.Errorf("unknown format '%s', expected one of %v", name, Formats)
	}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Errorf("cannot tell the format of '%s' without an extension", path)
	}
	return ParseFormat(ext)
}

// Encode writes the record of s to w
func Encode(w io.Writer, format Format, s space.Space) error {
	rec, err := ToRecord(s)
	if err != nil {
		return err
	}
	return EncodeRecord(w, format, rec)
}

func EncodeRecord(w io.Writer, format Format, rec Record) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rec), "encode json")
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	case TOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(rec), "encode toml")
	default:
		return errors.Errorf("unknown format '%s'", format)
	}
}

// Decode reads a record from r and rebuilds its space
func Decode(r io.Reader, format Format) (space.Space, error) {
	rec, err := DecodeRecord(r, format)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded record", "kind", rec.Kind, "format", format)
	return FromRecord(rec)
}

func DecodeRecord(r io.Reader, format Format) (Record, error) {
	var rec Record
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return Record{}, errors.Wrap(err, "decode json")
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&rec); err != nil {
			return Record{}, errors.Wrap(err, "decode yaml")
		}
	case TOML:
		meta, err := toml.NewDecoder(r).Decode(&rec)
		if err != nil {
			return Record{}, errors.Wrap(err, "decode toml")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Record{}, errors.Errorf("decode toml: unknown keys %v", undecoded)
		}
	default:
		return Record{}, errors.Errorf("unknown format '%s'", format)
	}
	return rec, nil
}

// DecodeRawValue parses one value written in format, as plain data for DecodeValue
func DecodeRawValue(r io.Reader, format Format) (any, error) {
	var raw any
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		// keeps integers above 2^53 exact
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "decode json value")
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "decode yaml value")
		}
	default:
		return nil, errors.Errorf("values cannot be read as %s", format)
	}
	return raw, nil
}
