package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/hueportal/internal/concurrency"
	"github.com/wheelibin/hueportal/internal/hue"
)

var ErrUnknownFixture = errors.New("unknown fixture")

type lightAPI interface {
	GetLight(ctx context.Context, id string) (json.RawMessage, error)
	SetLightState(ctx context.Context, id string, state any) (json.RawMessage, error)
}

// Fixture is a light placed in the scene.
type Fixture struct {
	ID      string
	LightID string
	Name    string
}

type Color struct {
	Hue int `json:"hue"`
	Sat int `json:"sat"`
	Bri int `json:"bri"`
}

type colorState struct {
	On bool `json:"on"`
	Color
}

type onState struct {
	On bool `json:"on"`
}

type Controller struct {
	logger   *log.Logger
	api      lightAPI
	fixtures map[string]Fixture
	order    []string
	throttle time.Duration
	debounce time.Duration

	mu         sync.Mutex
	debouncers map[string]*concurrency.Debouncer
}

func NewController(logger *log.Logger, api lightAPI, fixtures []Fixture, throttle, debounce time.Duration) *Controller {
	byID := lo.KeyBy(fixtures, func(f Fixture) string { return f.ID })
	return &Controller{
		logger:     logger,
		api:        api,
		fixtures:   byID,
		order:      lo.Uniq(lo.Map(fixtures, func(f Fixture, _ int) string { return f.ID })),
		throttle:   throttle,
		debounce:   debounce,
		debouncers: map[string]*concurrency.Debouncer{},
	}
}

func (c *Controller) Fixtures() []Fixture {
	return lo.Map(c.order, func(id string, _ int) Fixture { return c.fixtures[id] })
}

func (c *Controller) fixture(id string) (Fixture, error) {
	f, ok := c.fixtures[id]
	if !ok {
		return Fixture{}, fmt.Errorf("%w: %s", ErrUnknownFixture, id)
	}
	return f, nil
}

func (c *Controller) setState(ctx context.Context, lightID string, state any) error {
	raw, err := c.api.SetLightState(ctx, lightID, state)
	if err != nil {
		return err
	}
	if err := hue.CheckResponse(raw); err != nil {
		return fmt.Errorf("error setting state of light %s: %w", lightID, err)
	}
	return nil
}

// Toggle flips the on state of the fixture's light and returns the new state.
func (c *Controller) Toggle(ctx context.Context, fixtureID string) (bool, error) {
	f, err := c.fixture(fixtureID)
	if err != nil {
		return false, err
	}

	raw, err := c.api.GetLight(ctx, f.LightID)
	if err != nil {
		return false, err
	}
	if err := hue.CheckResponse(raw); err != nil {
		return false, fmt.Errorf("error reading light %s: %w", f.LightID, err)
	}
	light, err := hue.Decode[hue.Light](raw, nil)
	if err != nil {
		return false, err
	}

	on := !light.State.On
	c.logger.Debug("Toggling fixture", "fixture", f.ID, "light", f.LightID, "on", on)
	if err := c.setState(ctx, f.LightID, onState{On: on}); err != nil {
		return light.State.On, err
	}
	return on, nil
}

// SetColor schedules a colour change for the fixture. Rapid changes to the same
// fixture collapse into the last one. Write failures are logged, and returned by
// FlushColors when it is the flush that sends them.
func (c *Controller) SetColor(ctx context.Context, fixtureID string, color Color) error {
	f, err := c.fixture(fixtureID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	d, ok := c.debouncers[f.ID]
	if !ok {
		d = concurrency.NewDebouncer(c.debounce)
		c.debouncers[f.ID] = d
	}
	c.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	d.Call(func() error {
		err := c.setState(ctx, f.LightID, colorState{On: true, Color: color})
		if err != nil {
			c.logger.Error("Error setting fixture colour", "fixture", f.ID, "err", err)
		}
		return err
	})
	return nil
}

// FlushColors sends any pending colour changes immediately and returns every
// write error joined together.
func (c *Controller) FlushColors() error {
	c.mu.Lock()
	pending := lo.Values(c.debouncers)
	c.mu.Unlock()

	var errs []error
	for _, d := range pending {
		if err := d.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetAll switches every fixture's light, paced to the bridge's command rate.
func (c *Controller) SetAll(ctx context.Context, on bool) error {
	lightIDs := lo.Uniq(lo.Map(c.Fixtures(), func(f Fixture, _ int) string { return f.LightID }))

	tw := concurrency.NewThrottledWorker(c.throttle, func(ctx context.Context, lightID string) error {
		return c.setState(ctx, lightID, onState{On: on})
	})
	return tw.Run(ctx, lightIDs)
}

// Close drops pending colour changes.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.debouncers {
		d.Stop()
	}
}
