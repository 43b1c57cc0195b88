package render

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"reel-composer/config"
	"reel-composer/types"
)

// cacheVersion changes whenever the frame output format changes
const cacheVersion = 1

// Fingerprint identifies everything a frame depends on. Two reels with equal
// fingerprints produce byte-identical frames.
func Fingerprint(reel types.Reel, cfg *config.Config) (string, error) {
	data, err := json.Marshal(struct {
		Version  int
		Reel     types.Reel
		Video    config.VideoConfig
		Captions config.CaptionsConfig
		Visuals  config.VisualsConfig
		Chunk    int
	}{cacheVersion, reel, cfg.Video, cfg.Captions, cfg.Visuals, cfg.Render.ChunkFrames})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ChunkKey is the cache key of one chunk of a fingerprinted reel
func ChunkKey(fingerprint string, index int) string {
	return fmt.Sprintf("%s-%04d", fingerprint, index)
}
