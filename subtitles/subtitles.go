package subtitles

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/asticode/go-astisub"
	"go.uber.org/zap"

	"reel-composer/captions"
	"reel-composer/types"
)

// Writer exports caption groups as sidecar subtitle files
type Writer struct {
	groupSize int
	logger    *zap.SugaredLogger
}

// New creates a new subtitle Writer
func New(groupSize int, logger *zap.SugaredLogger) *Writer {
	if groupSize <= 0 {
		groupSize = captions.DefaultGroupSize
	}
	return &Writer{groupSize: groupSize, logger: logger.Named("subtitles")}
}

// Build converts word timestamps into one subtitle item per caption group.
// Each item spans the first word's start to the last word's end.
func (w *Writer) Build(words []types.WordTimestamp) *astisub.Subtitles {
	subs := astisub.NewSubtitles()
	for _, g := range captions.Partition(words, w.groupSize) {
		if g.Empty() {
			continue
		}
		first, last := g.Words[0], g.Words[len(g.Words)-1]
		end := last.End
		if end < first.Start {
			end = first.Start
		}
		subs.Items = append(subs.Items, &astisub.Item{
			StartAt: seconds(first.Start),
			EndAt:   seconds(end),
			Lines: []astisub.Line{
				{Items: []astisub.LineItem{{Text: g.Text()}}},
			},
		})
	}
	return subs
}

// Run writes captions.srt and captions.vtt into outputDir and returns their paths
func (w *Writer) Run(words []types.WordTimestamp, outputDir string) (string, string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", "", err
	}

	subs := w.Build(words)
	if len(subs.Items) == 0 {
		w.logger.Infow("no words to caption, skipping sidecars")
		return "", "", nil
	}

	srtFile := filepath.Join(outputDir, "captions.srt")
	vttFile := filepath.Join(outputDir, "captions.vtt")

	if err := writeFile(srtFile, func(o io.Writer) error { return subs.WriteToSRT(o) }); err != nil {
		return "", "", fmt.Errorf("write srt: %w", err)
	}
	if err := writeFile(vttFile, func(o io.Writer) error { return subs.WriteToWebVTT(o) }); err != nil {
		return "", "", fmt.Errorf("write vtt: %w", err)
	}
	if err := ValidateSRT(srtFile); err != nil {
		return "", "", err
	}

	w.logger.Infow("caption sidecars written", "items", len(subs.Items), "srt", srtFile, "vtt", vttFile)
	return srtFile, vttFile, nil
}

// ValidateSRT checks that the SRT file is valid and non-empty
func ValidateSRT(srtFile string) error {
	f, err := os.Open(srtFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineCount := 0
	for scanner.Scan() {
		lineCount++
	}

	if lineCount < 3 {
		return fmt.Errorf("SRT file appears empty or malformed (%d lines)", lineCount)
	}
	return nil
}

func writeFile(path string, write func(o io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
