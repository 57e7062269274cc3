package ops

// Typed request records, one per operation. Tests construct these directly
// instead of going through the command line.

// AddRequest creates a new managed job from a repetition sentence.
type AddRequest struct {
	Name     string
	Command  string
	Sentence string
}

// RenameRequest renames every managed job called Old to New.
type RenameRequest struct {
	Old string
	New string
}

// DeleteRequest removes every managed job with that exact name.
type DeleteRequest struct {
	Name string
}

// EnableRequest enables every managed job with that name.
type EnableRequest struct {
	Name string
}

// DisableRequest disables every managed job with that name.
type DisableRequest struct {
	Name string
}

// TriggerRequest sets or clears ("none") the trigger on matching jobs.
type TriggerRequest struct {
	Name     string
	Sentence string
}

// SearchRequest lists jobs. Name may be a job name, NameSupercron for all
// managed jobs, or NameAll for every line of the table.
type SearchRequest struct {
	Name string
}

// ClearRequest removes every managed job. Confirmation is the caller's
// concern and must happen before the transaction starts.
type ClearRequest struct{}
