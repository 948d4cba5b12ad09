// SPDX-License-Identifier: MIT

// Package random provides the uniform-draw collaborator used by sampling code.
//
// There is no package-level generator. Callers create an RNG with an explicit
// seed and pass it (or any other Source) into functions that need randomness,
// which keeps runs reproducible and tests deterministic.
package random
