package editor

import (
	"errors"
	"sync"
)

// Outcome is how an intent settled
type Outcome int

const (
	// Pending means the intent has not settled yet
	Pending Outcome = iota
	// Confirmed means the renderer keeps the edit with the finalized value
	Confirmed
	// Cancelled means the renderer discards the tentative edit
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// ErrAlreadySettled is returned when a completion is settled a second time
var ErrAlreadySettled = errors.New("completion already settled")

// Result is what the renderer receives when an intent settles. Value is
// only meaningful for Confirmed results.
type Result[T any] struct {
	Outcome Outcome
	Value   T
}

// Completion is the continuation handed over with every intent. It settles
// exactly once, either confirming the edit with its finalized value or
// cancelling it.
type Completion[T any] struct {
	mu       sync.Mutex
	result   Result[T]
	onSettle func(Result[T])
}

// NewCompletion creates a pending completion. onSettle, if set, runs once
// with the result.
func NewCompletion[T any](onSettle func(Result[T])) *Completion[T] {
	return &Completion[T]{onSettle: onSettle}
}

// Confirm settles the completion with the finalized value
func (c *Completion[T]) Confirm(value T) error {
	return c.settle(Result[T]{Outcome: Confirmed, Value: value})
}

// Cancel settles the completion without data
func (c *Completion[T]) Cancel() error {
	return c.settle(Result[T]{Outcome: Cancelled})
}

func (c *Completion[T]) settle(r Result[T]) error {
	c.mu.Lock()
	if c.result.Outcome != Pending {
		c.mu.Unlock()
		return ErrAlreadySettled
	}
	c.result = r
	onSettle := c.onSettle
	c.mu.Unlock()

	if onSettle != nil {
		onSettle(r)
	}
	return nil
}

// Settled reports whether the completion has settled
func (c *Completion[T]) Settled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.Outcome != Pending
}

// Result returns the settled result; the outcome is Pending before that
func (c *Completion[T]) Result() Result[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
