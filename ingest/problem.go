package ingest

// OperationInput is one per-operation record of a Problem:
// `[id, machine, duration, [p1, p2, ...]]`.
type OperationInput struct {
	ID           int
	Machine      int
	Duration     float64
	Predecessors []int
}

// Problem is a fully-parsed, not-yet-validated problem description,
// mirroring the record structure of the text format one field per record.
// textfmt.ReadProblem and synth.Generate both produce Problem values;
// FromProblem is the only consumer that needs to trust them, and it
// doesn't: it revalidates everything.
type Problem struct {
	// M is the number of operations, G the number of machines.
	M, G int

	// MaxRuntime bounds wall-clock search time; zero disables the cap.
	MaxRuntime float64
	// MaxDepth bounds decision-tree depth; zero disables the cap.
	MaxDepth int
	// LogDetail selects the engine's iteration-logging verbosity; zero is
	// minimal.
	LogDetail int

	// MachineCounts holds, per machine in order, how many operations are
	// assigned to it. len(MachineCounts) must equal G and the entries must
	// sum to M.
	MachineCounts []int

	// MachineOrder lists operation identifiers grouped by machine, in the
	// same machine order as MachineCounts. It must be a permutation of
	// 1..M and is used only to cross-check OperationInput.Machine
	// consistency, not to seed any scheduling order.
	MachineOrder []int

	// Operations holds one record per operation, in arbitrary order.
	Operations []OperationInput
}
