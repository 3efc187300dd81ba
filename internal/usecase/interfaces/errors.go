package interfaces

import "github.com/pkg/errors"

// ErrConcurrentUpdate is returned by repositories when a conditional write
// lost against a concurrent writer (stale version or status).
var ErrConcurrentUpdate = errors.New("concurrent update")
