// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package reqbuild assembles immutable descriptions of outbound HTTP
requests for execution by a separate transport layer.

Create a builder with a method and base URL, chain field updates onto
it, and finalize it into a Request:

	req := reqbuild.NewBuilder("GET", "https://storage.example.com/bucket/obj").
		AddQueryParameter("versionId", version).
		AddHeader("x-client-trace: " + traceID).
		AddRangeHeader(byterange.Closed(0, 1<<20)).
		EnableAcceptEncoding().
		BuildRequest()

The finished Request is immutable: the transport layer may read it from
any number of goroutines with no further synchronization. The builder
itself is a plain sequential accumulator and is consumed by
BuildRequest; construct a fresh builder for every request.

Package reqbuild performs no validation and cannot fail. Method strings
are stored verbatim, header lines are appended untouched and in order,
and query parameter keys and values are percent-encoded independently
(see package escape) so the assembled URL is well formed regardless of
the characters they contain. Anything semantically wrong with the
accumulated fields surfaces only when the transport layer issues the
request.

For transports built on the GoLang standard library,
Request.ToHTTPRequest converts a finished Request into an *http.Request
suitable for any HTTPDoer (for example http.Client from package
net/http).

Package byterange formats Range headers from half-open byte intervals,
and package escape provides the percent-encoding applied to query
parameter components.
*/
package reqbuild
