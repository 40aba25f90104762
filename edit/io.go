package edit

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadFile reads a file into a new document. CR-LF line endings are
// normalized to LF. A missing file yields an empty document, so a new
// filename can be edited and saved.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("file", path).Msg("file does not exist, starting empty")
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug().Str("file", path).Int("bytes", len(data)).Msg("loaded file")
	return FromString(string(data)), nil
}

// SaveFile writes the document to a file, joining lines with LF
func SaveFile(d *Document, path string) error {
	if err := os.WriteFile(path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.Debug().Str("file", path).Int("lines", d.LineCount()).Msg("saved file")
	return nil
}
