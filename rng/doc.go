// SPDX-License-Identifier: MIT

// Package rng provides a small, seedable uniform random source backed by
// the PCG32 generator.
//
// What
//
//   - Rand wraps github.com/MichaelTJones/pcg with the draw shapes the
//     rest of this module consumes: IntN, Float64, Float32, Uint32.
//   - NewSeeded(seed) gives a reproducible stream; New() starts from the
//     generator's default state.
//   - *Rand satisfies pairset.Source, as does *rand.Rand from
//     math/rand/v2; pick whichever fits the caller.
//
// Why
//
//   - Sampling operations take their randomness as an argument, so tests
//     and replays need a compact deterministic source with explicit
//     seeding and no global state.
//   - PCG32 is fast, tiny (two uint64 words), and statistically solid for
//     the subset-selection workloads here.
//
// Determinism
//
//   - The same seed always yields the same stream. Bounded draws use
//     rejection sampling, so streams stay aligned across platforms.
//
// Not cryptographically secure. Do not use for keys, tokens, or anything
// adversarial.
package rng
