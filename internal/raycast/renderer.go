package raycast

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/asciicast/asciicast/internal/entity"
	"github.com/asciicast/asciicast/internal/telemetry"
)

// Display receives each finished frame.
type Display interface {
	Present(fb *FrameBuffer) error
}

// Renderer owns the frame buffer and fills it once per call to Render.
type Renderer struct {
	fb      *FrameBuffer
	workers int
	frames  int64
	tracer  trace.Tracer
}

// NewRenderer creates a renderer for a fixed screen size.
// workers > 1 splits the columns into that many bands rendered concurrently.
func NewRenderer(width, height, workers int) *Renderer {
	return &Renderer{
		fb:      NewFrameBuffer(width, height),
		workers: max(workers, 1),
		tracer:  telemetry.Tracer("raycast"),
	}
}

// Render casts every column and overlays the status line.
// The returned buffer is reused by the next call.
func (r *Renderer) Render(ctx context.Context, walls Walls, p *entity.Player) *FrameBuffer {
	_, span := r.tracer.Start(ctx, "frame.render")
	defer span.End()

	r.frames++
	r.fb.Clear()

	if r.workers == 1 {
		r.renderColumns(walls, p, 0, r.fb.width)
	} else {
		r.renderParallel(walls, p)
	}

	r.fb.Overlay(StatusLine(p))

	span.SetAttributes(
		attribute.Int64("frame.number", r.frames),
		attribute.Int("frame.width", r.fb.width),
		attribute.Int("frame.height", r.fb.height),
		attribute.Int("frame.workers", r.workers),
		attribute.Float64("player.x", p.Pos.X),
		attribute.Float64("player.y", p.Pos.Y),
	)
	return r.fb
}

// Draw renders a frame and hands it to the display.
func (r *Renderer) Draw(ctx context.Context, walls Walls, p *entity.Player, d Display) error {
	if err := d.Present(r.Render(ctx, walls, p)); err != nil {
		return fmt.Errorf("present frame %d: %w", r.frames, err)
	}
	return nil
}

// renderColumns fills columns [from, to) left to right.
func (r *Renderer) renderColumns(walls Walls, p *entity.Player, from, to int) {
	for x := from; x < to; x++ {
		DrawColumn(r.fb, x, Cast(walls, p, x, r.fb.width))
	}
}

// renderParallel gives each worker a disjoint band of columns.
func (r *Renderer) renderParallel(walls Walls, p *entity.Player) {
	width := r.fb.width
	band := (width + r.workers - 1) / r.workers

	var g errgroup.Group
	for from := 0; from < width; from += band {
		to := min(from+band, width)
		g.Go(func() error {
			r.renderColumns(walls, p, from, to)
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()
}

// StatusLine reports the camera position and facing.
func StatusLine(p *entity.Player) string {
	dir := p.Dir()
	return fmt.Sprintf("X=%.2f Y=%.2f  Dir=(%.2f,%.2f)  WASD to move, Q to quit",
		p.Pos.X, p.Pos.Y, dir.X, dir.Y)
}
