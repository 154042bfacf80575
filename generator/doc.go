// Package generator
// Author: momentics <momentics@gmail.com>
//
// api.Generator implementations: bounded random ints, a no-immediate-repeat
// variant, float ranges, colours, Vector2 pairs and a deterministic stride.
// Random generators take an api.Source; nil selects the process-wide
// default, a seeded *rand.Rand makes runs reproducible.
package generator
