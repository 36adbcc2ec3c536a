// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqbuild

import (
	"strings"

	"github.com/gogama/reqbuild/byterange"
	"github.com/gogama/reqbuild/escape"
)

const usedMsg = "reqbuild: builder used after BuildRequest"

// A Builder incrementally accumulates the fields of an outbound HTTP
// request and finalizes them into an immutable Request.
//
// Every field update method mutates the builder in place and returns
// the builder itself, so a request can be assembled in one chained
// expression. A Builder is a sequential accumulator: it is not safe
// for concurrent use without external synchronization.
//
// A Builder is single-use. BuildRequest consumes it, and any method
// called on a consumed builder panics.
type Builder struct {
	method         string
	url            strings.Builder
	headers        []string
	userAgent      string
	acceptEncoding bool
	separator      string // "?" until the first query parameter, "&" after
	built          bool
}

// NewBuilder returns a new Builder for a request with the given method
// and base URL.
//
// Both arguments are stored verbatim: the method is not normalized or
// checked for HTTP legality, and the base URL is not parsed or
// re-encoded. An illegal method or malformed URL surfaces as a failure
// only when the transport layer issues the built request.
func NewBuilder(method, baseURL string) *Builder {
	b := &Builder{
		method:    method,
		separator: "?",
	}
	b.url.WriteString(baseURL)
	return b
}

// AddUserAgentPrefix prepends prefix to the request's user-agent
// string and returns the builder.
//
// Each call prepends, so prefixes stack in reverse call order: the
// prefix added last ends up at the front of the final string.
func (b *Builder) AddUserAgentPrefix(prefix string) *Builder {
	b.check()
	b.userAgent = prefix + b.userAgent
	return b
}

// AddHeader appends a full header line of the form "Name: value" to
// the request's header list and returns the builder.
//
// The line is stored untouched. Insertion order is preserved into the
// final Request, and no deduplication is done: adding the same header
// name twice produces two lines, in call order, and it is up to the
// transport layer (or the server) to decide what repeated names mean.
func (b *Builder) AddHeader(line string) *Builder {
	b.check()
	b.headers = append(b.headers, line)
	return b
}

// AddRangeHeader appends the Range header line describing r to the
// request's header list and returns the builder. It is shorthand for
// AddHeader(byterange.RangeHeader(r)).
func (b *Builder) AddRangeHeader(r byterange.ByteRange) *Builder {
	return b.AddHeader(byterange.RangeHeader(r))
}

// AddQueryParameter appends a key=value query parameter to the
// request's URL and returns the builder.
//
// The key and value are percent-encoded independently with
// escape.URIComponent before being joined, so either may contain any
// byte sequence, including '&', '=', '?', spaces, and non-ASCII text,
// without breaking the query string. The separator and '=' written by
// AddQueryParameter itself are never encoded.
//
// The first call introduces the query string with '?'; every later
// call joins with '&'. Parameters appear in the final URL in call
// order, repeated keys included.
func (b *Builder) AddQueryParameter(key, value string) *Builder {
	b.check()
	b.url.WriteString(b.separator)
	b.url.WriteString(escape.URIComponent(key))
	b.url.WriteByte('=')
	b.url.WriteString(escape.URIComponent(value))
	b.separator = "&"
	return b
}

// EnableAcceptEncoding marks the request as one for which the
// transport layer should negotiate content encoding (for example gzip
// compression) and returns the builder. The flag defaults to false.
func (b *Builder) EnableAcceptEncoding() *Builder {
	b.check()
	b.acceptEncoding = true
	return b
}

// BuildRequest finalizes the builder, moving every accumulated field
// into a new immutable Request.
//
// BuildRequest consumes the builder. Ownership of the accumulated
// data transfers to the returned Request, and any further method call
// on the builder, including a second BuildRequest, panics. Construct
// a fresh builder for each request.
func (b *Builder) BuildRequest() Request {
	b.check()
	b.built = true
	r := Request{
		method:         b.method,
		url:            b.url.String(),
		headers:        b.headers,
		userAgent:      b.userAgent,
		acceptEncoding: b.acceptEncoding,
	}
	b.headers = nil
	b.userAgent = ""
	b.url.Reset()
	return r
}

func (b *Builder) check() {
	if b.built {
		panic(usedMsg)
	}
}
