package types

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadReel decodes a reel job and validates it
func ReadReel(r io.Reader) (Reel, error) {
	var reel Reel
	if err := json.NewDecoder(r).Decode(&reel); err != nil {
		return Reel{}, fmt.Errorf("%w: decode: %v", ErrInvalidReel, err)
	}
	if err := reel.Validate(); err != nil {
		return Reel{}, err
	}
	return reel, nil
}

// LoadReel reads a reel job from a JSON file
func LoadReel(path string) (Reel, error) {
	f, err := os.Open(path)
	if err != nil {
		return Reel{}, err
	}
	defer f.Close()
	return ReadReel(f)
}
