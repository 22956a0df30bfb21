// Package game drives the view with a scripted client session: a box room,
// a player walking a loop and a few monsters, some carrying flashlights.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/q2view/internal/client"
	"github.com/Faultbox/q2view/internal/config"
	"github.com/Faultbox/q2view/internal/engine/debug"
	"github.com/Faultbox/q2view/internal/engine/picking"
	"github.com/Faultbox/q2view/internal/engine/renderer"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/internal/logger"
	"github.com/Faultbox/q2view/internal/view"
)

// serverFrameMs is the server snapshot interval.
const serverFrameMs = 100

// Game is one scripted session.
type Game struct {
	cfg      *config.Config
	cl       *client.State
	world    *picking.BoxWorld
	renderer *renderer.Headless
	view     *view.Assembler
	script   *Script
	log      *zap.Logger

	serverTime int
}

// New creates a session from cfg.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing session",
		zap.String("renderer", cfg.Renderer.Type),
		zap.Int("width", cfg.Renderer.Width),
		zap.Int("height", cfg.Renderer.Height),
	)

	typ, err := renderer.ParseType(cfg.Renderer.Type)
	if err != nil {
		return nil, err
	}

	var opts []renderer.Option
	if cfg.Renderer.SnapshotDir != "" && cfg.Renderer.SnapshotEvery > 0 {
		capture := debug.NewCapture(cfg.Renderer.SnapshotDir, "view")
		opts = append(opts, renderer.WithSnapshots(capture, cfg.Renderer.SnapshotEvery, cfg.Renderer.Width, cfg.Renderer.Height))
		log.Info("writing snapshots",
			zap.String("dir", cfg.Renderer.SnapshotDir),
			zap.String("session", capture.Session()),
		)
	}
	r := renderer.NewHeadless(typ, opts...)

	script := NewScript(r)
	g := &Game{
		cfg:      cfg,
		cl:       client.NewState(scene.MaxEntities),
		world:    NewRoom(),
		renderer: r,
		script:   script,
		log:      log,
	}
	g.cl.Screen = scene.Rect{Width: cfg.Renderer.Width, Height: cfg.Renderer.Height}

	g.view, err = view.New(cfg, g.cl, r, g.script, view.Options{Tracer: g.world})
	if err != nil {
		return nil, fmt.Errorf("failed to create view: %w", err)
	}
	g.script.Attach(g.view)

	log.Info("session initialized", zap.Int("brushes", len(g.world.Brushes)))
	return g, nil
}

// Run renders frames at a fixed frame time.
func (g *Game) Run(frames int, frameTime time.Duration) error {
	start := time.Now()
	g.log.Info("starting frame loop", zap.Int("frames", frames), zap.Duration("frame_time", frameTime))

	for i := 0; i < frames; i++ {
		g.update(frameTime)
		if err := g.view.RenderView(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	g.log.Info("frame loop finished",
		zap.Int("frames", g.renderer.Frames()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Float32("light_level", g.cl.LightLevel),
		zap.Int("snapshots", len(g.renderer.Snapshots())),
	)
	return nil
}

// Exec runs a view console command.
func (g *Game) Exec(line string) (string, error) {
	return g.view.Exec(line)
}

// State returns the client state.
func (g *Game) State() *client.State { return g.cl }

// Renderer returns the recording renderer.
func (g *Game) Renderer() *renderer.Headless { return g.renderer }

// Close releases session resources.
func (g *Game) Close() {
	g.log.Info("closing session")
	if g.view != nil {
		g.view.Close()
	}
}

// update advances client time and, every server frame, takes a new snapshot.
func (g *Game) update(frameTime time.Duration) {
	cl := g.cl
	cl.FrameTime = float32(frameTime.Seconds())
	cl.Time += int(frameTime.Milliseconds())

	for cl.Time >= g.serverTime {
		cl.OldFrame = cl.Frame
		cl.Frame = g.script.Snapshot(cl.Frame.Number+1, g.serverTime)
		g.serverTime += serverFrameMs
	}

	cl.LerpFrac = 1 - float32(g.serverTime-cl.Time)/serverFrameMs
	g.script.Predict(cl)
}
