package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"reel-composer/assets"
	"reel-composer/cache"
	"reel-composer/config"
	"reel-composer/logging"
	"reel-composer/render"
	"reel-composer/styles"
	"reel-composer/subtitles"
	"reel-composer/types"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml (empty for defaults)")
	reelPath := flag.String("reel", "reel.json", "path to the reel job")
	frame := flag.Int("frame", -1, "print a single frame as JSON and exit")
	outDir := flag.String("out", "", "output directory (overrides paths.output)")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := logging.Must("info")
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatalw("failed to load config", "path", *configPath, "error", err)
	}
	if *outDir != "" {
		cfg.Paths.Output = *outDir
	}
	if cfg.Logging.Level != "info" {
		if l, err := logging.New(cfg.Logging.Level); err != nil {
			logger.Warnw("bad log level, keeping info", "level", cfg.Logging.Level, "error", err)
		} else {
			logger = l
		}
	}

	reel, err := types.LoadReel(*reelPath)
	if err != nil {
		logger.Fatalw("failed to load reel", "path", *reelPath, "error", err)
	}

	resolveStock(cfg, &reel, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	segCache := cache.Open(ctx, cfg.Cache, logger.Named("cache"))
	defer segCache.Close()
	renderer := render.New(cfg, segCache, logger)

	if *frame >= 0 {
		data, err := renderer.Preview(reel, *frame)
		if err != nil {
			logger.Fatalw("preview failed", "frame", *frame, "error", err)
		}
		fmt.Println(string(data))
		return
	}

	if err := run(ctx, cfg, reel, renderer, logger); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run renders one reel into a fresh run directory
func run(ctx context.Context, cfg *config.Config, reel types.Reel, renderer *render.Renderer, logger *zap.SugaredLogger) error {
	runID := uuid.NewString()[:8]
	runDir := filepath.Join(cfg.Paths.Output, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		logger.Errorw("failed to create run dir", "dir", runDir, "error", err)
		return err
	}

	logger = logger.With("run", runID)
	logger.Infow("reel composer starting", "reel", reel.ID, "dir", runDir)

	styleKey := reel.CaptionStyle
	if styleKey == "" {
		styleKey = cfg.Captions.DefaultStyle
	}
	state := &types.RunState{
		RunID:        runID,
		ReelID:       reel.ID,
		StartedAt:    time.Now().UTC().Format(time.RFC3339),
		FPS:          cfg.Video.FPS,
		CaptionStyle: styles.Parse(styleKey).String(),
	}

	var runErr error
	defer func() {
		state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		saveState(state, runDir, logger)
		if runErr != nil {
			logger.Errorw("run failed", "error", state.Error)
			return
		}
		logger.Infow("run complete", "frames", state.FramesFile)
	}()

	// Stage 1: caption sidecars
	if cfg.Captions.WriteSidecars {
		logger.Info("━━━ STAGE 1: Caption sidecars ━━━")
		sub := subtitles.New(cfg.Captions.WordsPerGroup, logger)
		srt, vtt, err := sub.Run(reel.WordTimestamps, runDir)
		if err != nil {
			logger.Warnw("caption sidecars failed, continuing without them", "error", err)
		}
		state.SRTFile, state.VTTFile = srt, vtt
	}

	// Stage 2: frames
	logger.Info("━━━ STAGE 2: Frame render ━━━")
	started := time.Now()
	res, err := renderer.Run(ctx, reel, runDir)
	if err != nil {
		runErr = err
		state.Error = fmt.Sprintf("Stage 2 Render: %v", err)
		return err
	}
	state.TotalFrames = res.TotalFrames
	state.FramesFile = res.FramesFile
	state.CachedChunks = res.CachedChunks
	state.RenderSeconds = time.Since(started).Seconds()
	return nil
}

// resolveStock points query-only stock segments at clips from the local library
func resolveStock(cfg *config.Config, reel *types.Reel, logger *zap.SugaredLogger) {
	lib, err := assets.Load(cfg.Assets.Dir, cfg.Assets.Tags, logger)
	if err != nil {
		logger.Warnw("clip library unavailable, stock queries stay unresolved", "error", err)
		return
	}
	n := lib.Resolve(reel)
	logger.Infow("stock queries resolved", "resolved", n, "library", lib.Len())
}

func saveState(state *types.RunState, dir string, logger *zap.SugaredLogger) {
	saveJSON(filepath.Join(dir, "run_state.json"), state, logger)
}

func saveJSON(path string, v interface{}, logger *zap.SugaredLogger) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Warnw("could not marshal JSON", "path", path, "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Warnw("could not save file", "path", path, "error", err)
	}
}
