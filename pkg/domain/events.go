package domain

import (
	"context"
	"time"
)

// CalculationEvent describes one completed calculation.
type CalculationEvent struct {
	Timestamp  time.Time     `json:"timestamp"`
	Source     string        `json:"source"` // adapter that triggered it: cli, http, mcp
	Mode       Mode          `json:"mode"`
	Degenerate bool          `json:"degenerate"`
	Duration   time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for calculator observability.
type LifecycleHooks struct {
	OnCalculate func(context.Context, *CalculationEvent)
}
