// Package expiring provides collections that forget their entries a fixed
// time after they were stored.
//
// The five containers share one mechanism:
//
//   - Counter counts events, Sum totals numeric deltas, List keeps values in
//     insertion order, Dict maps keys to values and Set holds keys.
//   - Every entry is stamped with the tick of a Clock when it is inserted.
//   - An entry whose age is at least TTL*scale ticks is expired. The boundary
//     is inclusive.
//   - Expiry is lazy. Nothing runs in the background; expired entries are
//     removed inside the call that reads the container. Counter, Sum and List
//     trim from the front because insertion order is age order. Dict and Set
//     scan every key.
//
// # Clocks
//
// MonotonicClock is the default and measures TTLs in seconds. A custom tick
// source is supplied through Config.TimeFunc together with Config.TimeScale,
// the number of ticks in one TTL unit. A TimeFunc without a TimeScale runs
// with a scale of 1. ManualClock is a hand-driven source for tests.
//
// # Refresh rules
//
// Dict.Set keeps the original tick of a key that is already stored, while
// Dict.Update and every Set insertion restamp the key with the current tick.
//
// # Concurrency
//
// Containers are not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package expiring
