// Package main runs a scripted view session against the headless renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/q2view/internal/config"
	"github.com/Faultbox/q2view/internal/game"
	"github.com/Faultbox/q2view/internal/logger"
)

// commandList collects repeated -exec flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

var (
	flagFrames    = flag.Int("frames", 300, "Number of frames to render")
	flagFrameTime = flag.Duration("frame-time", 16*time.Millisecond, "Simulated time per frame")
	flagExec      commandList
)

func init() {
	flag.Var(&flagExec, "exec", "View command to run before the first frame (repeatable)")
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== q2view ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create session", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	for _, line := range flagExec {
		out, err := g.Exec(line)
		if err != nil {
			logger.Warn("command failed", zap.String("command", line), zap.Error(err))
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}

	if err := g.Run(*flagFrames, *flagFrameTime); err != nil {
		logger.Error("session error", zap.Error(err))
		os.Exit(1)
	}

	if out, err := g.Exec("viewpos"); err == nil {
		fmt.Println(out)
	}
	logger.Info("session closed normally")
}
