// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package chunk

import "strconv"

// Status is the outcome class of an extraction.
type Status uint8

const (
	// StatusNotFound means no applicable value exists in the input.
	StatusNotFound Status = iota
	// StatusFound means the value was copied in full.
	StatusFound
	// StatusTooSmall means the value does not fit in the buffer capacity.
	StatusTooSmall
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusTooSmall:
		return "too small"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Result is returned by every extraction. Only a found result carries a length,
// which equals the buffer length after the call.
type Result struct {
	status Status
	n      int
}

// Found returns a successful result for n copied bytes.
func Found(n int) Result { return Result{status: StatusFound, n: n} }

// NotFound returns the result for an absent value.
func NotFound() Result { return Result{status: StatusNotFound} }

// TooSmall returns the result for a capacity shortfall.
func TooSmall() Result { return Result{status: StatusTooSmall} }

// Status returns the outcome class.
func (r Result) Status() Status { return r.status }

// Len returns the number of bytes copied. It is zero unless the result is found.
func (r Result) Len() int { return r.n }

// Found reports whether the value was copied.
func (r Result) Found() bool { return r.status == StatusFound }

// NotFound reports whether the value was absent.
func (r Result) NotFound() bool { return r.status == StatusNotFound }

// TooSmall reports whether the buffer was too small for the value.
func (r Result) TooSmall() bool { return r.status == StatusTooSmall }

// String formats the result for logs, e.g. "found(12)".
func (r Result) String() string {
	if r.status == StatusFound {
		return "found(" + strconv.Itoa(r.n) + ")"
	}
	return r.status.String()
}
