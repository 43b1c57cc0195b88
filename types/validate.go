package types

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinDurationSec = 1.0
	MaxDurationSec = 300.0
	MaxWords       = 2000
	MaxWordLength  = 100
)

var ErrInvalidReel = errors.New("invalid reel")

// Validate applies the upstream request limits before a reel reaches the engine.
// The engine itself tolerates anything; this only guards the CLI host.
func (r *Reel) Validate() error {
	if r.DurationSeconds < MinDurationSec || r.DurationSeconds > MaxDurationSec {
		return fmt.Errorf("%w: duration %.2fs outside [%.0f, %.0f]", ErrInvalidReel, r.DurationSeconds, MinDurationSec, MaxDurationSec)
	}

	if err := validateWords(r.WordTimestamps); err != nil {
		return err
	}

	if err := validateOverlays(r.Overlays); err != nil {
		return err
	}

	return nil
}

func validateWords(words []WordTimestamp) error {
	if len(words) > MaxWords {
		return fmt.Errorf("%w: %d word timestamps (max %d)", ErrInvalidReel, len(words), MaxWords)
	}

	for i, w := range words {
		if strings.TrimSpace(w.Word) == "" {
			return fmt.Errorf("%w: word %d is empty", ErrInvalidReel, i)
		}
		if len(w.Word) > MaxWordLength {
			return fmt.Errorf("%w: word %d longer than %d chars", ErrInvalidReel, i, MaxWordLength)
		}
		if w.Start < 0 {
			return fmt.Errorf("%w: word %d has negative start", ErrInvalidReel, i)
		}
		if w.End < w.Start {
			return fmt.Errorf("%w: word %d ends before it starts", ErrInvalidReel, i)
		}
	}

	return nil
}

func validateOverlays(segments []OverlaySegment) error {
	for i, s := range segments {
		if s.StartTime < 0 {
			return fmt.Errorf("%w: overlay %d has negative start", ErrInvalidReel, i)
		}
		if s.Duration <= 0 {
			return fmt.Errorf("%w: overlay %d has non-positive duration", ErrInvalidReel, i)
		}
	}
	return nil
}
