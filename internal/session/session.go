// Package session runs the interactive walker loop.
package session

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridgeom/geom"
	"github.com/samdwyer/gridgeom/internal/telemetry"
	"github.com/samdwyer/gridgeom/internal/ui"
	"github.com/samdwyer/gridgeom/internal/walk"
)

// Session holds the interactive walker state.
type Session struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	arena    *walk.Arena
	walker   *walk.Walker
	running  bool
}

// New creates a session for the named embedded arena.
func New(arenaName string) (*Session, error) {
	arena, err := walk.LoadArena(arenaName)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Session{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		arena:    arena,
		walker:   walk.NewWalker(arena.Start),
		running:  true,
	}, nil
}

// Run executes the input loop until the user quits.
func (s *Session) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("session")

	ctx, initSpan := tracer.Start(ctx, "session.init")
	initSpan.SetAttributes(
		attribute.String("arena.name", s.arena.Name),
		attribute.Int("arena.width", s.arena.Width()),
		attribute.Int("arena.height", s.arena.Height()),
		attribute.String("walker.start", s.walker.Start.String()),
	)
	initSpan.End()

	for s.running {
		s.renderer.Render(s.arena, s.walker)
		s.handleInput(ctx)
	}

	s.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (s *Session) handleInput(ctx context.Context) {
	ev := s.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Arrows step the walker, [ and ]
// turn its heading, f steps forward in the heading.
func (s *Session) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.running = false

	case tcell.KeyUp:
		s.walker.Step(geom.DirectionUp, s.arena)
	case tcell.KeyDown:
		s.walker.Step(geom.DirectionDown, s.arena)
	case tcell.KeyLeft:
		s.walker.Step(geom.DirectionLeft, s.arena)
	case tcell.KeyRight:
		s.walker.Step(geom.DirectionRight, s.arena)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			s.running = false
		case '[':
			s.walker.TurnLeft()
		case ']':
			s.walker.TurnRight()
		case 'f', 'F':
			s.walker.Forward(s.arena)
		}
	}
}

// Close cleans up session resources.
func (s *Session) Close() {
	if s.screen != nil {
		s.screen.Close()
	}
}
