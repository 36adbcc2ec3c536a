// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqbuild

import (
	"context"
	"net/http"
	urlpkg "net/url"
	"strings"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const nilCtxMsg = "reqbuild: nil context"

// A Request is the finished, immutable description of an outbound HTTP
// request, produced by Builder.BuildRequest and consumed by a
// transport layer.
//
// A Request carries no mutable state and no reference back to the
// builder that produced it, so it may be shared freely and read
// concurrently by any number of transport-layer consumers.
type Request struct {
	method         string
	url            string
	headers        []string
	userAgent      string
	acceptEncoding bool
}

// Method returns the HTTP method, exactly as given to NewBuilder.
func (r Request) Method() string {
	return r.method
}

// URL returns the fully assembled target URL: the base URL given to
// NewBuilder followed by every query parameter added to the builder,
// in call order.
func (r Request) URL() string {
	return r.url
}

// Headers returns the request's header lines in the order they were
// added. The returned slice is a copy; modifying it does not affect
// the Request.
func (r Request) Headers() []string {
	headers := make([]string, len(r.headers))
	copy(headers, r.headers)
	return headers
}

// UserAgent returns the accumulated user-agent string, or the empty
// string if no prefix was ever added.
func (r Request) UserAgent() string {
	return r.userAgent
}

// AcceptEncoding reports whether the transport layer should negotiate
// content encoding for this request.
func (r Request) AcceptEncoding() bool {
	return r.acceptEncoding
}

// ToHTTPRequest converts the Request into a GoLang standard library
// *http.Request ready to hand to an HTTPDoer. The context of the new
// request is set to ctx, which may not be nil.
//
// Header lines are split at the first colon, with leading whitespace
// trimmed from the value; a line containing no colon becomes a field
// with the whole line as its name and an empty value. Values of a
// repeated header name keep their insertion order within the
// http.Header entry, though the relative order of distinct names is
// not representable in an http.Header and is lost. If the Request has
// a non-empty user-agent string it is set as the User-Agent header.
//
// The accept-encoding flag is deliberately not materialized as an
// Accept-Encoding header: when the header is absent, http.Transport
// negotiates gzip on its own and transparently decompresses the
// response, which is exactly the negotiation the flag asks for.
//
// ToHTTPRequest returns an error only if the assembled URL does not
// parse.
func (r Request) ToHTTPRequest(ctx context.Context) (*http.Request, error) {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	u, err := urlpkg.Parse(r.url)
	if err != nil {
		return nil, err
	}
	req := template.WithContext(ctx)
	req.Method = r.method
	req.URL = u
	req.Host = u.Host
	req.Header = make(http.Header, len(r.headers))
	for _, line := range r.headers {
		name, value := splitHeaderLine(line)
		req.Header.Add(name, value)
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}
	return req, nil
}

func splitHeaderLine(line string) (name, value string) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i+1:], " \t")
}
