// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract surface of the forkjoin scheduler: the frame protocol that user
// task code implements, the directives a resume step can hand back to the
// trampoline, the instrumentation hooks, and the common error values.
//
// The scheduler treats frames as opaque: the only things it ever touches
// are the Resume method and the Header bookkeeping block embedded in every
// frame.
package api
