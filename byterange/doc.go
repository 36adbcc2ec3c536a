// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package byterange describes half-open byte intervals and formats them
as HTTP Range header lines.

A ByteRange either covers the half-open interval [InclusiveMin,
ExclusiveMax) or is unbounded above, running from InclusiveMin to the
end of the resource:

	byterange.RangeHeader(byterange.Closed(0, 100)) // "Range: bytes=0-99"
	byterange.RangeHeader(byterange.Suffix(500))    // "Range: bytes=500-"

RangeHeader converts the exclusive upper bound to HTTP's inclusive
convention by subtracting one. Multi-range requests (several intervals
in one header) are not supported.
*/
package byterange
