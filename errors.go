package gfaview

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gfaview/graph"
)

var (
	// ErrClosed is returned when using a query service after Close.
	ErrClosed = errors.New("query service closed")
)

// ErrNodeNotFound indicates a lookup for a node the graph does not
// contain.
type ErrNodeNotFound struct {
	NodeID graph.NodeID
}

func (e *ErrNodeNotFound) Error() string {
	return fmt.Sprintf("node not found: %d", e.NodeID)
}

// ErrPathNotFound indicates a lookup for a path the graph does not
// contain.
type ErrPathNotFound struct {
	PathID graph.PathID
}

func (e *ErrPathNotFound) Error() string {
	return fmt.Sprintf("path not found: %d", e.PathID)
}

// ErrStepOutOfRange indicates a step pointer outside its path.
type ErrStepOutOfRange struct {
	PathID graph.PathID
	Step   graph.StepPtr
}

func (e *ErrStepOutOfRange) Error() string {
	return fmt.Sprintf("step %d out of range on path %d", e.Step, e.PathID)
}
