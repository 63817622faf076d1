package game

import (
	"context"
	"fmt"
	"time"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/data"
	"dungeon-crawler/internal/input"
	"dungeon-crawler/internal/render"
	"dungeon-crawler/internal/rng"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Game hosts a Session on a terminal screen: it polls key events, ticks the
// session at a fixed rate and presents each frame.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
	display  config.DisplayConfig
	tickRate time.Duration
	log      *zap.Logger
}

// New creates a Game on the process terminal.
func New(cfg *config.Config, monsters *data.MonsterTable, log *zap.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, cfg, monsters, log)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game on an already initialized screen.
func NewWithScreen(screen tcell.Screen, cfg *config.Config, monsters *data.MonsterTable, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := NewSession(cfg, monsters, rng.New(cfg.Session.Seed), log)
	if err != nil {
		return nil, err
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  s,
		display:  cfg.Display,
		tickRate: cfg.Session.TickRate,
		log:      log,
	}
	g.fitCamera()
	return g, nil
}

// fitCamera shrinks the configured display to what the screen can show
// above the HUD, keeping the camera centered on the player.
func (g *Game) fitCamera() {
	w, h := g.renderer.ViewSize()
	vw := max(min(g.display.Width, w), 1)
	vh := max(min(g.display.Height, h), 1)
	if vh%2 == 0 && vh+1 > h {
		vh-- // an even height covers vh+1 rows
	}
	vh = max(vh, 1)
	focus, _ := g.session.PlayerPosition()
	g.session.Camera.Resize(vw, vh, focus)
}

// Session exposes the hosted session.
func (g *Game) Session() *Session {
	return g.session
}

// Run is the main loop. It returns when the player quits, ctx is cancelled,
// or a tick fails. The screen is finalized on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	// events receives all tcell events from the polling goroutine.
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.tickRate)
	defer ticker.Stop()

	key := input.KeyNone
	for {
		select {
		case <-ctx.Done():
			g.finish()
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.fitCamera()
			case *tcell.EventKey:
				k := input.FromEvent(ev)
				if k == input.KeyQuit {
					g.finish()
					return nil
				}
				if k != input.KeyNone {
					key = k // latest key wins
				}
			}
		case <-ticker.C:
			// Keys are only consumed while awaiting input; hold them
			// through the player and monster phases.
			accepts := g.session.Turn == AwaitingInput
			batch, err := g.session.Tick(key)
			if err != nil {
				return err
			}
			if accepts {
				key = input.KeyNone
			}
			g.renderer.Present(batch, g.session.Status())
		}
	}
}

// finish records the run summary. A disk problem is logged, never fatal.
func (g *Game) finish() {
	rl := newRunLog(g.session, time.Now())
	g.log.Info("session ended",
		zap.Int("turns", rl.Turns),
		zap.Int("monsters_removed", rl.MonstersRemoved),
		zap.Int("monsters_left", rl.MonstersLeft),
	)
	if err := saveRunLog(rl); err != nil {
		g.log.Warn("save run log", zap.Error(err))
	}
}
