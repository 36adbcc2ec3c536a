// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqbuild

import (
	"net/http"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library HTTP client (http.Client from package net/http).
//
// HTTPDoer is the seam between this package and the transport layer: a
// finished Request is converted with Request.ToHTTPRequest and handed
// to an HTTPDoer, which owns everything this package does not —
// opening connections, redirects, retries, timeouts, and reading the
// response.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}
