// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package byterange

import (
	"strconv"
)

// A ByteRange is a byte interval within a resource, bounded below and
// optionally bounded above. Construct one with Closed or Suffix.
type ByteRange struct {
	// InclusiveMin is the offset of the first byte included in the
	// range. It must be non-negative.
	InclusiveMin int64

	// ExclusiveMax is the offset one past the last byte included in
	// the range, so the range covers the half-open interval
	// [InclusiveMin, ExclusiveMax). It is meaningful only when
	// Bounded is true, and must then be greater than InclusiveMin: a
	// zero- or negative-length range is a caller error which this
	// package does not detect, and which surfaces only when the
	// remote server rejects the request.
	ExclusiveMax int64

	// Bounded reports whether ExclusiveMax is set. An unbounded range
	// runs from InclusiveMin to the end of the resource.
	Bounded bool
}

// Closed returns the ByteRange covering the half-open interval
// [inclusiveMin, exclusiveMax).
func Closed(inclusiveMin, exclusiveMax int64) ByteRange {
	return ByteRange{
		InclusiveMin: inclusiveMin,
		ExclusiveMax: exclusiveMax,
		Bounded:      true,
	}
}

// Suffix returns the ByteRange running from inclusiveMin to the end
// of the resource.
func Suffix(inclusiveMin int64) ByteRange {
	return ByteRange{InclusiveMin: inclusiveMin}
}

// IsBounded reports whether the range has an upper bound.
func (r ByteRange) IsBounded() bool {
	return r.Bounded
}

// String returns the range in HTTP Range header value syntax:
// "bytes=<min>-<max>" with an inclusive upper bound when the range is
// bounded, or "bytes=<min>-" when it is not.
func (r ByteRange) String() string {
	if r.Bounded {
		return "bytes=" + strconv.FormatInt(r.InclusiveMin, 10) +
			"-" + strconv.FormatInt(r.ExclusiveMax-1, 10)
	}
	return "bytes=" + strconv.FormatInt(r.InclusiveMin, 10) + "-"
}

// RangeHeader returns the full header line requesting r, of the form
// "Range: bytes=<min>-<max>" or "Range: bytes=<min>-". It is a pure
// function of r.
func RangeHeader(r ByteRange) string {
	return "Range: " + r.String()
}
