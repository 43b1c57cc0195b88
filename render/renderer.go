// Package render drives a composition across every frame of a reel and
// writes the result for an external rasterizer.
package render

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"reel-composer/cache"
	"reel-composer/compose"
	"reel-composer/config"
	"reel-composer/types"
)

// FramesFileName is written inside the run directory
const FramesFileName = "frames.jsonl"

// Renderer evaluates every frame of a reel and writes them out in order
type Renderer struct {
	cfg    *config.Config
	cache  cache.SegmentCache
	logger *zap.SugaredLogger
}

// New creates a new Renderer. A nil cache disables caching.
func New(cfg *config.Config, c cache.SegmentCache, logger *zap.SugaredLogger) *Renderer {
	if c == nil {
		c = cache.Nop{}
	}
	return &Renderer{cfg: cfg, cache: c, logger: logger.Named("render")}
}

// Result summarizes one render
type Result struct {
	FramesFile   string
	TotalFrames  int
	Chunks       int
	CachedChunks int
}

// chunk is the half-open frame range [From, To)
type chunk struct {
	Index    int
	From, To int
}

// Run renders reel into outputDir/frames.jsonl, one JSON frame per line.
// Chunks are computed concurrently but always written in frame order.
func (r *Renderer) Run(ctx context.Context, reel types.Reel, outputDir string) (Result, error) {
	comp := compose.New(reel, r.cfg)
	chunks := plan(comp.TotalFrames(), r.cfg.Render.ChunkFrames)
	r.logger.Infow("starting frame render",
		"reel", reel.ID,
		"frames", comp.TotalFrames(),
		"chunks", len(chunks),
		"workers", r.cfg.Render.Workers,
		"style", comp.StyleKind().String(),
	)

	fp, err := Fingerprint(reel, r.cfg)
	if err != nil {
		return Result{}, fmt.Errorf("fingerprint reel: %w", err)
	}

	// Step 1: evaluate chunks in parallel
	encoded := make([][]byte, len(chunks))
	var cached atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Render.Workers)
	for _, ch := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, hit, err := r.renderChunk(gctx, comp, fp, ch)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", ch.Index, err)
			}
			if hit {
				cached.Add(1)
			}
			encoded[ch.Index] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Step 2: write them out in order
	framesFile := filepath.Join(outputDir, FramesFileName)
	if err := writeChunks(framesFile, encoded); err != nil {
		return Result{}, fmt.Errorf("write frames: %w", err)
	}

	res := Result{
		FramesFile:   framesFile,
		TotalFrames:  comp.TotalFrames(),
		Chunks:       len(chunks),
		CachedChunks: int(cached.Load()),
	}
	r.logger.Infow("frames written", "file", framesFile, "chunks", res.Chunks, "cached", res.CachedChunks)
	return res, nil
}

// renderChunk serves a chunk from the cache or computes and stores it.
// Cache failures are logged and never fail the render.
func (r *Renderer) renderChunk(ctx context.Context, comp *compose.Composer, fp string, ch chunk) ([]byte, bool, error) {
	key := ChunkKey(fp, ch.Index)

	data, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warnw("cache read failed, recomputing chunk", "chunk", ch.Index, "error", err)
	} else if ok {
		r.logger.Debugw("chunk served from cache", "chunk", ch.Index)
		return data, true, nil
	}

	data, err = encodeChunk(comp, ch)
	if err != nil {
		return nil, false, err
	}
	if err := r.cache.Set(ctx, key, data); err != nil {
		r.logger.Warnw("cache write failed", "chunk", ch.Index, "error", err)
	}
	return data, false, nil
}

// plan splits [0, total) into chunks of at most size frames
func plan(total, size int) []chunk {
	if size <= 0 {
		size = total
	}
	var chunks []chunk
	for from := 0; from < total; from += size {
		to := from + size
		if to > total {
			to = total
		}
		chunks = append(chunks, chunk{Index: len(chunks), From: from, To: to})
	}
	return chunks
}

func encodeChunk(comp *compose.Composer, ch chunk) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i := ch.From; i < ch.To; i++ {
		if err := enc.Encode(comp.Frame(i)); err != nil {
			return nil, fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func writeChunks(path string, chunks [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, data := range chunks {
		if _, err := w.Write(data); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Preview renders a single frame as indented JSON
func (r *Renderer) Preview(reel types.Reel, frame int) ([]byte, error) {
	comp := compose.New(reel, r.cfg)
	if frame < 0 || frame >= comp.TotalFrames() {
		r.logger.Warnw("preview frame outside the reel", "frame", frame, "total", comp.TotalFrames())
	}
	return json.MarshalIndent(comp.Frame(frame), "", "  ")
}
