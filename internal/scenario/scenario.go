// Package scenario replays a scripted sequence of operations against one
// expiring container driven by a manual clock.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcheviron/expiring"
)

// Step is one operation applied at tick At. Which of the payload fields are
// read depends on Op.
type Step struct {
	At     int64             `yaml:"at"`
	Op     string            `yaml:"op"`
	Key    string            `yaml:"key,omitempty"`
	Value  string            `yaml:"value,omitempty"`
	Items  []string          `yaml:"items,omitempty"`
	Values map[string]string `yaml:"values,omitempty"`
	Amount float64           `yaml:"amount,omitempty"`
}

// Scenario is a container kind, its configuration and the steps to replay.
type Scenario struct {
	Container       string `yaml:"container"`
	expiring.Config `yaml:",inline"`
	Steps           []Step `yaml:"steps"`
}

var (
	ErrUnknownContainer = errors.New("unknown container")
	ErrUnknownOp        = errors.New("unknown op")
	ErrClockRewind      = errors.New("steps must not go back in time")
)

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a scenario.
func Parse(b []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the container kind, every op name and that step ticks
// never decrease.
func (sc *Scenario) Validate() error {
	ops, ok := containerOps[sc.Container]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownContainer, sc.Container)
	}
	if sc.TTL < 0 {
		return fmt.Errorf("ttl must not be negative, got %v", sc.TTL)
	}
	var last int64
	for i, step := range sc.Steps {
		if _, ok := ops[step.Op]; !ok {
			return fmt.Errorf("step %d: %w %q for %s", i, ErrUnknownOp, step.Op, sc.Container)
		}
		if i > 0 && step.At < last {
			return fmt.Errorf("step %d: %w (%d after %d)", i, ErrClockRewind, step.At, last)
		}
		last = step.At
	}
	return nil
}

var containerOps = map[string]map[string]struct{}{
	"counter": opSet("increase", "value", "evict", "clear"),
	"sum":     opSet("change", "value", "len", "evict", "clear"),
	"list":    opSet("append", "extend", "snapshot", "count", "remove", "len", "clear", "evict"),
	"dict":    opSet("set", "get", "get_or", "ttl", "contains", "delete", "update", "clear", "snapshot", "keys", "len", "evict"),
	"set":     opSet("add", "remove", "update", "contains", "snapshot", "len", "clear", "evict"),
}

func opSet(ops ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		out[op] = struct{}{}
	}
	return out
}
