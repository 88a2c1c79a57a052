package automation

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dotsim/internal/physics"
	"github.com/san-kum/dotsim/internal/sim"
)

const (
	KindBody       = "body"
	KindRandomBody = "random_body"
	KindExplosion  = "explosion"
)

var ErrUnknownEvent = errors.New("automation: unknown event kind")

// Scenario is a scripted list of input events replayed against a world.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Events      []Event `yaml:"events"`
}

// Event spawns Count things of Kind once the simulation clock reaches AtMs.
// X and Y are ignored for random bodies.
type Event struct {
	AtMs  float64 `yaml:"at_ms"`
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Count int     `yaml:"count"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return &scenario, nil
}

func (s *Scenario) Validate() error {
	for i, e := range s.Events {
		switch e.Kind {
		case KindBody, KindRandomBody, KindExplosion:
		default:
			return fmt.Errorf("event %d: %q: %w", i+1, e.Kind, ErrUnknownEvent)
		}
		if e.AtMs < 0 {
			return fmt.Errorf("event %d: negative at_ms %v", i+1, e.AtMs)
		}
	}
	return nil
}

// CenterBlast sets off a single explosion in the middle of the world at the
// first tick.
func CenterBlast(b physics.Bounds) *Scenario {
	return &Scenario{
		Name:   "center-blast",
		Events: []Event{{Kind: KindExplosion, X: b.Width / 2, Y: b.Height / 2}},
	}
}

// Script replays a scenario into a world. It is a sim.Observer: after each
// tick it queues the events that have come due, so they join the world on
// the following tick.
type Script struct {
	world  *sim.World
	events []Event
	next   int
}

func NewScript(s *Scenario, w *sim.World) (*Script, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].AtMs < events[j].AtMs })
	return &Script{world: w, events: events}, nil
}

// Fire queues every pending event due at or before now and reports how many
// events fired.
func (s *Script) Fire(now float64) int {
	fired := 0
	for s.next < len(s.events) && s.events[s.next].AtMs <= now {
		s.apply(s.events[s.next])
		s.next++
		fired++
	}
	return fired
}

func (s *Script) apply(e Event) {
	for i := 0; i < max(e.Count, 1); i++ {
		switch e.Kind {
		case KindBody:
			s.world.SpawnBody(e.X, e.Y)
		case KindRandomBody:
			s.world.SpawnRandomBody()
		case KindExplosion:
			s.world.SpawnExplosion(e.X, e.Y)
		}
	}
}

func (s *Script) OnStep(f *sim.Frame) { s.Fire(f.Time) }

func (s *Script) Done() bool { return s.next >= len(s.events) }

// Attach queues the events due at time zero and registers the script as an
// observer of target.
func (s *Script) Attach(target *sim.Simulator) {
	s.Fire(0)
	target.AddObserver(s)
}
