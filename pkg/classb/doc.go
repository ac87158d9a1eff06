// Package classb computes the textbook figures of merit of a class-B
// push-pull output stage from either idealized or bench-measured operating
// points.
//
// The model is the single-supply lab circuit: two complementary emitter
// followers driving a load RL, biased by a resistive divider R1/R2 across
// VCC. For an output swing of UoutPP volts peak-to-peak the package derives
// peak and RMS load voltage, peak and average device current, total supply
// draw, output power, supply power, per-device dissipation, efficiency and
// voltage gain.
//
// Two entry points cover the two ways an operating point is obtained:
//
//   - Theoretical evaluates the idealized full-drive case, with the output
//     swinging the whole rail and the divider carrying only its static
//     current.
//   - Analyze evaluates a measured case, inferring the bias current from the
//     DC drop observed across R2.
//
// Both share one formula chain, so the theoretical case is exactly the
// measured case with its inputs pinned by the circuit. Degenerate inputs
// (no supply power, no drive) resolve to zero figures rather than errors;
// everything else is computed as plain IEEE arithmetic.
//
// A Session accumulates successive measured points and keeps the running
// summary (mean gain, best efficiency, worst per-device dissipation) for
// comparing a series of bias or drive adjustments.
package classb
