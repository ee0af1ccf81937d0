package notify

import (
	"io"

	"github.com/rs/zerolog"
)

// BellChime signals cues with the terminal bell. It is deliberately dumb:
// every cue maps to a single BEL, the terminal decides what that sounds like.
type BellChime struct {
	w   io.Writer
	log zerolog.Logger
}

// NewBellChime creates a chime writing BEL to w.
func NewBellChime(w io.Writer, log zerolog.Logger) *BellChime {
	return &BellChime{w: w, log: log}
}

// Play writes a terminal bell. Write failures are logged and swallowed.
func (c *BellChime) Play(cue Cue) {
	if _, err := c.w.Write([]byte{'\a'}); err != nil {
		c.log.Debug().Err(err).Str("cue", string(cue)).Msg("could not play cue")
	}
}
