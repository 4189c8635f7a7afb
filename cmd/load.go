package cmd

import (
	"fmt"
	"os"

	"github.com/cottand/spaces/internal/log"
	"github.com/cottand/spaces/space"
	"github.com/cottand/spaces/space/codec"
)

var cmdLogger = log.DefaultLogger.With("section", "cmd")

// loadSpace reads a space definition file, picking the format from its extension
func loadSpace(path string) (space.Space, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open space file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := codec.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("could not load space from %s: %w", path, withCode(err))
	}
	cmdLogger.Debug("loaded space", "path", path, "space", s.String())
	return s, nil
}

// codedError prints its cause with the ErrCode prefix while keeping it unwrappable
type codedError struct {
	cause error
}

func withCode(err error) error { return &codedError{cause: err} }

func (e *codedError) Error() string { return space.FormatWithCode(e.cause) }
func (e *codedError) Unwrap() error { return e.cause }
