package jsonshape

// Severity expresses how strictly a load-time condition is treated.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate object keys.
type Strictness struct {
	// OnDuplicateKey: Ignore keeps the last occurrence silently, Warn keeps
	// it and reports through LoadOpt.OnIssue, Error fails the load.
	OnDuplicateKey Severity
}

// LoadOpt bundles document loading options. The zero value applies no
// enforcement.
type LoadOpt struct {
	Strictness Strictness
	// MaxDepth caps container nesting; 0 disables the check.
	MaxDepth int
	// MaxBytes caps the input size in bytes; 0 disables the check.
	MaxBytes int64
	// OnIssue receives non-fatal issues (duplicate keys under Warn).
	OnIssue func(Issue)
}

func lastOpt(opts []LoadOpt) LoadOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return LoadOpt{}
}

func (o LoadOpt) enforcementNeeded() bool {
	return o.Strictness.OnDuplicateKey != Ignore || o.MaxDepth > 0
}
