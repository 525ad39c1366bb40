// Package machbound computes a lower bound on the makespan contributed by
// a single machine, ignoring every other machine's constraints. Two
// single-machine list-scheduling sweeps are run, one prioritising by
// descending tail (back_before) and one by descending release (fwd_before)
// with the roles swapped, and the tighter of the two becomes that
// machine's bound. Aggregating the per-machine bounds with max gives a
// valid lower bound on the whole problem's makespan: the true optimum can
// never finish before any one machine's own unavoidable workload does.
package machbound
