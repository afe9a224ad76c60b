package git

import "errors"

// Sentinel errors for the engine's failure modes. Callers match them with
// errors.Is; the wrapped message carries the underlying cause.
var (
	// Construction-time failures: nothing has been written yet.
	ErrOpenRepository = errors.New("open repository")
	ErrReadIndex      = errors.New("read index")
	ErrWriteTree      = errors.New("write tree")
	ErrAuthorIdentity = errors.New("resolve author identity")

	// ErrWriteCommit aborts a run mid-chain; commits already written remain
	// as loose objects and the branch head is untouched.
	ErrWriteCommit = errors.New("write commit object")

	// ErrResetHead surfaces after the full chain exists; only the branch
	// pointer is stale.
	ErrResetHead = errors.New("reset head")
)
