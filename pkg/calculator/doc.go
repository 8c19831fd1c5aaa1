/*
Package calculator implements the two mixing models of tempera.

Both models are closed-form and pure: they take domain.InputParameters and return a
domain.MixResult together with the derivation trace that explains it. They never fail.
Physically meaningless inputs (ice above 0°C, a target outside the hot/cold range,
negative masses) are computed as given; a zero denominator yields zero masses and
marks the result as degenerate.

# Models

  - Water: mass balance over temperature deltas (hot liquid + cold water).
  - Ice: explicit energy balance including warming the ice, melting it and warming
    the melt water to the target temperature.
*/
package calculator
