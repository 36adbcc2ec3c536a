// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package escape percent-encodes URI components.

URIComponent encodes a single component of a URI, such as one query
parameter key or value, escaping every byte that is not an RFC 3986
unreserved character. It is stricter than the encoders in the GoLang
standard library net/url package: url.QueryEscape writes spaces as '+',
and url.PathEscape leaves sub-delimiters such as '&' and '=' bare, so
neither produces a string that can be embedded in a query string
regardless of its content.

	escape.URIComponent("x&y")  // "x%26y"
	escape.URIComponent("1 2")  // "1%202"

PercentDecode reverses URIComponent.
*/
package escape
