package scenario

import (
	"fmt"
	"sort"

	"github.com/mcheviron/expiring"
)

// Result is the outcome of one step. Error holds a per-step failure such as
// a missing key; it does not stop the replay.
type Result struct {
	At     int64  `json:"at"`
	Op     string `json:"op"`
	Key    string `json:"key,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type target interface {
	apply(step Step) (any, error)
}

// Run replays sc and passes each step's Result to emit. It stops at the
// first error returned by emit.
func Run(sc *Scenario, emit func(Result) error) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	clock := expiring.NewManualClock(0)
	scale := sc.TimeScale
	if scale <= 0 {
		scale = 1
	}
	cfg := sc.Config.WithClock(clock.Clock(scale))

	tgt, err := newTarget(sc.Container, cfg)
	if err != nil {
		return err
	}

	for _, step := range sc.Steps {
		clock.Set(step.At)
		res := Result{At: step.At, Op: step.Op, Key: step.Key}
		out, err := tgt.apply(step)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Result = out
		}
		if err := emit(res); err != nil {
			return fmt.Errorf("emit step at %d: %w", step.At, err)
		}
	}
	return nil
}

func newTarget(container string, cfg expiring.Config) (target, error) {
	switch container {
	case "counter":
		return counterTarget{expiring.NewCounter(cfg)}, nil
	case "sum":
		return sumTarget{expiring.NewSum[float64](cfg)}, nil
	case "list":
		return listTarget{expiring.NewList[string](cfg)}, nil
	case "dict":
		return dictTarget{expiring.NewDict[string, string](cfg)}, nil
	case "set":
		return setTarget{expiring.NewSet[string](cfg)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownContainer, container)
	}
}

type counterTarget struct {
	c *expiring.Counter
}

func (t counterTarget) apply(step Step) (any, error) {
	switch step.Op {
	case "increase":
		t.c.Increase()
	case "value":
		return t.c.Value(), nil
	case "evict":
		t.c.Evict()
	case "clear":
		t.c.Clear()
	}
	return nil, nil
}

type sumTarget struct {
	s *expiring.Sum[float64]
}

func (t sumTarget) apply(step Step) (any, error) {
	switch step.Op {
	case "change":
		t.s.Change(step.Amount)
	case "value":
		return t.s.Value(), nil
	case "len":
		return t.s.Len(), nil
	case "evict":
		t.s.Evict()
	case "clear":
		t.s.Clear()
	}
	return nil, nil
}

type listTarget struct {
	l *expiring.List[string]
}

func (t listTarget) apply(step Step) (any, error) {
	switch step.Op {
	case "append":
		t.l.Append(step.Value)
	case "extend":
		t.l.Extend(step.Items...)
	case "snapshot":
		return t.l.Snapshot(), nil
	case "count":
		return t.l.Count(step.Value), nil
	case "remove":
		return t.l.Remove(step.Value), nil
	case "len":
		return t.l.Len(), nil
	case "clear":
		t.l.Clear()
	case "evict":
		t.l.Evict()
	}
	return nil, nil
}

type dictTarget struct {
	d *expiring.Dict[string, string]
}

func (t dictTarget) apply(step Step) (any, error) {
	switch step.Op {
	case "set":
		t.d.Set(step.Key, step.Value)
	case "get":
		return t.d.Get(step.Key)
	case "get_or":
		return t.d.GetOr(step.Key, step.Value), nil
	case "ttl":
		return t.d.TTL(step.Key)
	case "contains":
		return t.d.Contains(step.Key), nil
	case "delete":
		return nil, t.d.Delete(step.Key)
	case "update":
		t.d.Update(step.Values)
	case "clear":
		t.d.Clear()
	case "snapshot":
		return t.d.Snapshot(), nil
	case "keys":
		keys := t.d.Keys()
		sort.Strings(keys)
		return keys, nil
	case "len":
		return t.d.Len(), nil
	case "evict":
		t.d.Evict()
	}
	return nil, nil
}

type setTarget struct {
	s *expiring.Set[string]
}

func (t setTarget) apply(step Step) (any, error) {
	switch step.Op {
	case "add":
		t.s.Add(step.Key)
	case "remove":
		return nil, t.s.Remove(step.Key)
	case "update":
		t.s.Update(step.Items...)
	case "contains":
		return t.s.Contains(step.Key), nil
	case "snapshot":
		items := make([]string, 0)
		for item := range t.s.Snapshot() {
			items = append(items, item)
		}
		sort.Strings(items)
		return items, nil
	case "len":
		return t.s.Len(), nil
	case "clear":
		t.s.Clear()
	case "evict":
		t.s.Evict()
	}
	return nil, nil
}
