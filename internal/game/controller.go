package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/actor"
	"github.com/vovakirdan/tui-rogue/internal/actor/player"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/mapgen"
	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/registry"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// Options tune a Controller.
type Options struct {
	Sight           world.Sight
	MessageCapacity int
	SpawnOffset     core.Position
	Logger          *log.Logger
}

// DefaultOptions returns the standard game settings.
func DefaultOptions() Options {
	return Options{
		Sight:           world.DefaultSight,
		MessageCapacity: message.DefaultCapacity,
		SpawnOffset:     player.DefaultSpawnOffset,
	}
}

// Controller drives the simulation. It is not safe for concurrent use;
// each session owns its own controller.
type Controller struct {
	state   *State
	builder *mapgen.Builder
	sight   world.Sight
	logger  *log.Logger

	queue []actor.Status

	status    Status
	hasStatus bool

	turns    int
	viewport core.Position
}

// NewController builds the first map and places the player on it.
func NewController(builder *mapgen.Builder, opts Options) (*Controller, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m, err := builder.Create()
	if err != nil {
		return nil, err
	}

	p := player.New(uuid.New())
	p.SetSpawnOffset(opts.SpawnOffset)
	p.SetPosition(mapgen.PlayerStart(m, rand.New(rand.NewSource(builder.Seed()))))
	p.OnCreate()

	c := &Controller{
		state:   NewState(m, p, opts.MessageCapacity),
		builder: builder,
		sight:   opts.Sight,
		logger:  logger,
	}

	logger.Debug("game started", "player", p.ID(), "pos", p.Position(), "seed", builder.Seed())
	return c, nil
}

// State exposes the simulation state.
func (c *Controller) State() *State {
	return c.state
}

// HandleEvent feeds an input event to the player and runs as many rounds
// as the player asked for. Requests that cost no time, such as toggling
// the message panel, take effect immediately.
func (c *Controller) HandleEvent(ev core.Event) {
	if ev.Kind == core.EventResize {
		c.viewport = core.Pos(ev.Width, ev.Height)
		c.logger.Debug("window resized", "width", ev.Width, "height", ev.Height)
		return
	}

	p := c.state.Player()
	p.HandleEvent(ev, c.state.Map)

	ticks := p.Ticks()
	if ticks == 0 {
		c.collect(p)
		c.apply()
		return
	}
	c.RunTicks(ticks)
}

// RunTicks runs n simulation rounds.
func (c *Controller) RunTicks(n int) {
	for i := 0; i < n; i++ {
		c.round()
	}
}

// round updates every actor against a snapshot taken before anyone moved,
// then applies the statuses they queued in the order they were collected.
func (c *Controller) round() {
	actors := c.state.Actors()
	infos := actor.Snapshot(actors)

	for _, a := range actors {
		a.OnUpdate(infos, c.state.Map)
	}
	for _, a := range actors {
		c.collect(a)
	}
	c.apply()
	c.turns++
}

func (c *Controller) collect(a actor.Actor) {
	c.state.Messages.Push(a.Messages()...)
	if s, ok := a.Status(); ok {
		c.queue = append(c.queue, s)
	}
}

func (c *Controller) apply() {
	queue := c.queue
	c.queue = nil

	for _, s := range queue {
		switch s.Kind {
		case actor.StatusResize:
			c.setStatus(Status{Kind: StatusResize, Width: s.Width, Height: s.Height})
		case actor.StatusLoadMap:
			c.loadMap(s.Offset)
		case actor.StatusToggleMessages:
			c.state.ShowMessages = !c.state.ShowMessages
		case actor.StatusSpawn:
			c.spawn(s.Spawn, s.At)
		case actor.StatusQuit:
			c.setStatus(Status{Kind: StatusQuit})
		}
	}
}

func (c *Controller) setStatus(s Status) {
	if c.hasStatus && c.status.Kind == StatusQuit {
		return
	}
	c.status = s
	c.hasStatus = true
}

func (c *Controller) loadMap(offset core.Position) {
	m, err := c.builder.CreateOffset(offset)
	if err != nil {
		c.logger.Error("cannot load map", "offset", offset, "err", err)
		return
	}
	c.state.Map = m
}

func (c *Controller) spawn(t actor.Type, at core.Position) {
	if t == actor.TypePlayer {
		c.logger.Error("refusing to spawn a second player", "at", at)
		return
	}

	a, err := registry.Create(t)
	if err != nil {
		c.logger.Error("cannot spawn actor", "type", t, "err", err)
		return
	}

	m := c.state.Map
	a.SetX(core.Clamp(at.X, 0, m.Width()-1))
	a.SetY(core.Clamp(at.Y, 0, m.Height()-1))
	c.state.Add(a)
	c.state.Messages.Push(a.Messages()...)

	c.logger.Debug("actor spawned", "type", t, "id", a.ID(), "pos", a.Position())
}

// Status returns the pending host request and clears it.
func (c *Controller) Status() (Status, bool) {
	if !c.hasStatus {
		return Status{}, false
	}
	s := c.status
	c.status = Status{}
	c.hasStatus = false
	return s, true
}

// Turns returns the number of rounds simulated so far.
func (c *Controller) Turns() int {
	return c.turns
}

// MapsVisited returns how many maps have been generated this game.
func (c *Controller) MapsVisited() int {
	return c.builder.Visited()
}

// Seed returns the world seed.
func (c *Controller) Seed() int64 {
	return c.builder.Seed()
}

// Viewport returns the last window size reported by a resize event.
func (c *Controller) Viewport() (width, height int) {
	return c.viewport.X, c.viewport.Y
}
