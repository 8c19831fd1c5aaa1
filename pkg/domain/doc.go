/*
Package domain contains the core types shared by the tempera calculator and its adapters.

It defines the inputs of a mixing calculation, the result it produces and the
derivation trace that explains how the result was obtained. This package is kept
pure and free of I/O, so every adapter (CLI, HTTP, MCP) speaks the same vocabulary.

# Key Entities

  - Mode: Which coolant is mixed into the hot liquid (cold water or ice).
  - InputParameters: The numeric inputs of one calculation.
  - Fields: The raw, user-typed text behind the InputParameters.
  - MixResult: Hot-liquid mass, coolant mass and the derivation Trace.
  - Trace: Ordered, titled steps with formatted rows for display.
*/
package domain
