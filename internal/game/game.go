package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/asciicast/asciicast/internal/entity"
	"github.com/asciicast/asciicast/internal/gamedata"
	"github.com/asciicast/asciicast/internal/raycast"
	"github.com/asciicast/asciicast/internal/telemetry"
	"github.com/asciicast/asciicast/internal/ui"
	"github.com/asciicast/asciicast/internal/world"
)

// Terminal shows frames and supplies command characters.
// ReadCommand returns io.EOF when input is exhausted.
type Terminal interface {
	raycast.Display
	ReadCommand() (rune, error)
	Close() error
}

// Game holds the entire game state.
type Game struct {
	terminal Terminal
	renderer *raycast.Renderer
	grid     *world.Grid
	player   *entity.Player
	running  bool
}

// New creates a game, opening the terminal front end selected by cfg.
func New(ctx context.Context, cfg Config) (*Game, error) {
	var t Terminal
	switch cfg.ResolveOutput(int(os.Stdin.Fd()), int(os.Stdout.Fd())) {
	case OutputTcell:
		palette, err := gamedata.LoadPalette()
		if err != nil {
			return nil, err
		}
		screen, err := ui.NewScreen(palette)
		if err != nil {
			return nil, fmt.Errorf("open terminal screen: %w", err)
		}
		t = screen
	default:
		t = ui.NewStream(os.Stdin, os.Stdout)
	}

	g, err := NewWithTerminal(ctx, cfg, t)
	if err != nil {
		t.Close()
		return nil, err
	}
	return g, nil
}

// NewWithTerminal creates a game that draws to and reads from t.
func NewWithTerminal(ctx context.Context, cfg Config, t Terminal) (*Game, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	grid, player, err := loadWorld(ctx, cfg)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("map.source", cfg.Map),
		attribute.Int("map.width", grid.Width()),
		attribute.Int("map.height", grid.Height()),
		attribute.Int("screen.width", cfg.Width),
		attribute.Int("screen.height", cfg.Height),
	)

	return &Game{
		terminal: t,
		renderer: raycast.NewRenderer(cfg.Width, cfg.Height, cfg.Workers),
		grid:     grid,
		player:   player,
		running:  true,
	}, nil
}

// Player returns the current camera pose.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Run alternates between drawing a frame and applying one command until quit
// or end of input. The terminal is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.terminal.Close()

	for g.running {
		if err := g.renderer.Draw(ctx, g.grid, g.player, g.terminal); err != nil {
			return err
		}

		r, err := g.terminal.ReadCommand()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		g.handleCommand(ctx, ParseCommand(r))
	}
	return nil
}

// handleCommand applies one command to the player.
func (g *Game) handleCommand(ctx context.Context, c Command) {
	if c == CmdQuit {
		g.running = false
		return
	}
	if c == CmdNone {
		return
	}

	_, span := telemetry.Tracer("game").Start(ctx, "game.command")
	Apply(c, g.player, g.grid)
	span.SetAttributes(
		attribute.String("command", c.String()),
		attribute.Float64("player.x", g.player.Pos.X),
		attribute.Float64("player.y", g.player.Pos.Y),
	)
	span.End()
}

// loadWorld resolves cfg.Map to a grid and a starting pose.
func loadWorld(ctx context.Context, cfg Config) (*world.Grid, *entity.Player, error) {
	if cfg.Map == GeneratedMapID {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		layout, err := world.Generate(ctx, 32, 24, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, nil, err
		}
		x, y := layout.Start()
		return layout.Grid, defaultPlayer(x, y), nil
	}

	registry, err := gamedata.LoadMapRegistry()
	if err != nil {
		return nil, nil, err
	}
	if def := registry.GetByID(cfg.Map); def != nil {
		grid, err := def.Grid()
		if err != nil {
			return nil, nil, err
		}
		return grid, def.Player(), nil
	}

	content, err := os.ReadFile(cfg.Map)
	if err != nil {
		return nil, nil, fmt.Errorf("load map %q: %w", cfg.Map, err)
	}
	grid, err := world.ParseGrid(string(content))
	if err != nil {
		return nil, nil, fmt.Errorf("parse map %s: %w", cfg.Map, err)
	}
	x, y, ok := findStart(grid)
	if !ok {
		return nil, nil, fmt.Errorf("map %s has no open cell", cfg.Map)
	}
	return grid, defaultPlayer(x, y), nil
}

// defaultPlayer faces -x with the reference field of view.
func defaultPlayer(x, y float64) *entity.Player {
	return entity.NewPlayer(entity.Vec2{X: x, Y: y}, entity.Vec2{X: -1, Y: 0}, entity.Vec2{X: 0, Y: 0.66})
}

// findStart picks the middle cell if it is open, otherwise the first open cell.
func findStart(grid *world.Grid) (float64, float64, bool) {
	cx, cy := grid.Width()/2, grid.Height()/2
	if !grid.IsWall(cx, cy) {
		return float64(cx) + 0.5, float64(cy) + 0.5, true
	}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if !grid.IsWall(x, y) {
				return float64(x) + 0.5, float64(y) + 0.5, true
			}
		}
	}
	return 0, 0, false
}
