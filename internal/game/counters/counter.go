package counters

import (
	"fmt"
	"strconv"
	"strings"
)

// Counter represents a counter on a permanent or player.
type Counter struct {
	Name  string
	Count int
}

// NewCounter creates a new counter with the given name and count.
func NewCounter(name string, count int) *Counter {
	if count <= 0 {
		count = 1
	}
	return &Counter{
		Name:  name,
		Count: count,
	}
}

// Add adds the specified amount to the counter.
func (c *Counter) Add(amount int) {
	if amount > 0 {
		c.Count += amount
	}
}

// Remove removes the specified amount from the counter.
// Will not allow count to go below 0.
func (c *Counter) Remove(amount int) {
	if amount > 0 {
		if c.Count >= amount {
			c.Count -= amount
		} else {
			c.Count = 0
		}
	}
}

// Copy creates a deep copy of the counter.
func (c *Counter) Copy() *Counter {
	return &Counter{
		Name:  c.Name,
		Count: c.Count,
	}
}

// BoostCounter represents a power/toughness boost counter (e.g., +1/+1, -1/-1).
type BoostCounter struct {
	*Counter
	Power     int
	Toughness int
}

// NewBoostCounter creates a new boost counter.
func NewBoostCounter(power, toughness, count int) *BoostCounter {
	name := boostCounterName(power, toughness)
	return &BoostCounter{
		Counter:   NewCounter(name, count),
		Power:     power,
		Toughness: toughness,
	}
}

// boostCounterName generates a name for a boost counter (e.g., "+1/+1", "-1/-1").
func boostCounterName(power, toughness int) string {
	return formatBoost(power) + "/" + formatBoost(toughness)
}

func formatBoost(value int) string {
	if value > 0 {
		return fmt.Sprintf("+%d", value)
	}
	return strconv.Itoa(value)
}

// Counters manages a collection of counters keyed by name.
type Counters struct {
	Counters map[string]*Counter
}

// NewCounters creates a new Counters collection.
func NewCounters() *Counters {
	return &Counters{
		Counters: make(map[string]*Counter),
	}
}

// AddCounter adds a counter to the collection.
// If a counter with the same name already exists, adds to its count.
func (cs *Counters) AddCounter(counter *Counter) {
	if counter == nil {
		return
	}
	if existing, ok := cs.Counters[counter.Name]; ok {
		existing.Add(counter.Count)
	} else {
		cs.Counters[counter.Name] = counter.Copy()
	}
}

// Add is shorthand for adding counters by name.
func (cs *Counters) Add(name string, amount int) {
	cs.AddCounter(NewCounter(name, amount))
}

// RemoveCounter removes the specified amount of counters of the given name.
// Returns true if any counters were removed.
func (cs *Counters) RemoveCounter(name string, amount int) bool {
	if amount <= 0 {
		return false
	}
	if counter, ok := cs.Counters[name]; ok {
		counter.Remove(amount)
		if counter.Count == 0 {
			delete(cs.Counters, name)
		}
		return true
	}
	return false
}

// GetCount returns the count of counters with the given name.
func (cs *Counters) GetCount(name string) int {
	if counter, ok := cs.Counters[name]; ok {
		return counter.Count
	}
	return 0
}

// HasCounter returns true if there are any counters with the given name.
func (cs *Counters) HasCounter(name string) bool {
	return cs.GetCount(name) > 0
}

// GetTotalCount returns the total number of all counters.
func (cs *Counters) GetTotalCount() int {
	total := 0
	for _, counter := range cs.Counters {
		total += counter.Count
	}
	return total
}

// GetBoostCounters returns all boost counters (power/toughness modifying counters).
// Checks counter names for boost counter patterns (e.g., "+1/+1", "-1/-1").
func (cs *Counters) GetBoostCounters() []*BoostCounter {
	var boostCounters []*BoostCounter
	for _, counter := range cs.Counters {
		if power, toughness, ok := parseBoostCounterName(counter.Name); ok {
			boostCounters = append(boostCounters, NewBoostCounter(power, toughness, counter.Count))
		}
	}
	return boostCounters
}

// parseBoostCounterName parses a boost counter name (e.g., "+1/+1") into
// power/toughness deltas. Returns power, toughness, and true if parsing succeeded.
func parseBoostCounterName(name string) (int, int, bool) {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	power, ok := parseBoostValue(parts[0])
	if !ok {
		return 0, 0, false
	}
	toughness, ok := parseBoostValue(parts[1])
	if !ok {
		return 0, 0, false
	}
	return power, toughness, true
}

func parseBoostValue(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Copy creates a deep copy of the Counters collection.
func (cs *Counters) Copy() *Counters {
	out := NewCounters()
	for name, counter := range cs.Counters {
		out.Counters[name] = counter.Copy()
	}
	return out
}
