// Package loader turns an input path into a validated room. It is the
// construction entry point used by the CLI: the source must exist before any
// parsing starts, and the decoder is chosen by file extension.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roomba/internal/logging"
	"github.com/vovakirdan/roomba/internal/registry"
	"github.com/vovakirdan/roomba/internal/room"
)

// Construct opens path, picks its format and decodes a room.
// A missing or unreadable path fails with room.KindSourceNotFound.
func Construct(path string, logger *log.Logger) (*room.Room, error) {
	logger = logging.OrDiscard(logger)

	f, err := os.Open(path)
	if err != nil {
		logger.Error("input file is incorrect, please provide a correct path", "path", path)
		return nil, &room.Error{
			Kind: room.KindSourceNotFound,
			Msg:  fmt.Sprintf("cannot open %s", path),
			Err:  err,
		}
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil && st.IsDir() {
		logger.Error("input path is a directory", "path", path)
		return nil, &room.Error{
			Kind: room.KindSourceNotFound,
			Msg:  fmt.Sprintf("%s is a directory", path),
		}
	}

	format, err := registry.ForPath(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoding input", "path", path, "format", format.Name)

	r, err := format.Decode(f, room.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Info("input file has been processed", "path", path, "room", r)
	return r, nil
}

// ConstructLevel is Construct with a logger built from a level name
// (CRITICAL, ERROR, WARNING, INFO or DEBUG) writing to w.
func ConstructLevel(path, level string, w io.Writer) (*room.Room, error) {
	logger, err := logging.New(w, level)
	if err != nil {
		return nil, err
	}
	return Construct(path, logger)
}
