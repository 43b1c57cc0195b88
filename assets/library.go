// Package assets resolves stock footage queries against a local tagged
// clip library before a reel is rendered.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"reel-composer/types"
)

// Library maps clip file names to their tags
type Library struct {
	dir    string
	tags   map[string][]string
	logger *zap.SugaredLogger
}

// Load reads tags.json. A missing file yields an empty library.
// Keys starting with "_" hold instructions for humans and are skipped.
func Load(dir, tagsPath string, logger *zap.SugaredLogger) (*Library, error) {
	logger = logger.Named("assets")
	lib := &Library{dir: dir, tags: make(map[string][]string), logger: logger}

	data, err := os.ReadFile(tagsPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnw("tags file not found, stock queries will stay unresolved", "path", tagsPath)
			return lib, nil
		}
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", tagsPath, err)
	}
	for k, v := range raw {
		if strings.HasPrefix(k, "_") {
			continue
		}
		var tags []string
		if err := json.Unmarshal(v, &tags); err != nil {
			continue
		}
		lib.tags[k] = tags
	}
	return lib, nil
}

// Len is the number of clips in the library
func (l *Library) Len() int { return len(l.tags) }

// Resolve fills the URL of every stock_video segment that only carries a
// query. A clip is used at most once per reel; the best-scoring clip wins,
// ties broken by file name so the same reel always resolves the same way.
// It returns the number of segments resolved.
func (l *Library) Resolve(reel *types.Reel) int {
	used := make(map[string]bool)
	for _, s := range reel.Overlays {
		if s.Content.Type == types.ContentStockVideo && s.Content.URL != "" {
			used[filepath.Base(s.Content.URL)] = true
		}
	}

	resolved := 0
	for i := range reel.Overlays {
		c := &reel.Overlays[i].Content
		if c.Type != types.ContentStockVideo || c.URL != "" || c.Query == "" {
			continue
		}

		file, score := l.pick(c.Query, used)
		if file == "" {
			l.logger.Infow("no clip matches stock query", "segment", reel.Overlays[i].ID, "query", c.Query)
			continue
		}
		used[file] = true
		c.URL = filepath.Join(l.dir, file)
		resolved++
		l.logger.Infow("picked clip", "segment", reel.Overlays[i].ID, "clip", file, "score", score)
	}
	return resolved
}

type scored struct {
	file  string
	score int
}

func (l *Library) pick(query string, used map[string]bool) (string, int) {
	var candidates []scored
	for file, clipTags := range l.tags {
		if used[file] {
			continue
		}
		if score := matchScore(strings.Fields(query), clipTags); score > 0 {
			candidates = append(candidates, scored{file, score})
		}
	}
	if len(candidates) == 0 {
		return "", 0
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].file < candidates[j].file
	})
	return candidates[0].file, candidates[0].score
}

// matchScore counts query words found in a clip's tags
func matchScore(words []string, clipTags []string) int {
	tagSet := make(map[string]bool, len(clipTags))
	for _, t := range clipTags {
		tagSet[strings.ToLower(t)] = true
	}

	score := 0
	for _, w := range words {
		if tagSet[strings.ToLower(strings.Trim(w, ",.;:!?"))] {
			score += 10
		}
	}
	return score
}
