// Package watch contains the core wake-up decision logic.
//
// It derives the stillness/time-of-day signal vector (Q10, Q30, M4, M6)
// from a stream of activity ticks and evaluates the alarm rule
// A = Q30 OR (Q10 AND (NOT M4 OR M6)). All operations are pure: state is
// threaded through calls so independent monitoring sessions stay isolated.
package watch
