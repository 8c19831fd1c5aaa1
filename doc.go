/*
Package tempera computes how much hot liquid and how much coolant (cold water or ice)
must be mixed to reach a target temperature for a given total mass.

It is a small, deterministic calculator with a readable derivation trace. The
core models live in pkg/calculator and never fail: unparsable numbers read as 0 and a
zero denominator yields zero masses. The Calculator in this package wraps those
models with logging and observability hooks, so every adapter (CLI, HTTP, MCP) reports
calculations the same way.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/tempera"
		"github.com/aretw0/tempera/pkg/domain"
	)

	func main() {
		calc := tempera.New()

		res := calc.Calculate(context.Background(), domain.InputParameters{
			Total:     500,
			Target:    60,
			Hot:       90,
			Mode:      domain.ModeWater,
			ColdWater: 10,
		})

		fmt.Println(res) // 312.5g hot + 187.5g water = 500.0g
	}
*/
package tempera
