package match

import (
	"fmt"
	"io"
)

// WritePGN writes the games one after another, separated by a blank line.
func WritePGN(w io.Writer, games []*GameRecord) error {
	for _, rec := range games {
		if _, err := fmt.Fprintf(w, "%s\n\n", rec.Game.String()); err != nil {
			return fmt.Errorf("write pgn for game %s: %w", rec.ID, err)
		}
	}
	return nil
}
