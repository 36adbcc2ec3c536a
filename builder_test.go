// Copyright 2021 The reqbuild Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqbuild

import (
	"strings"
	"testing"

	"github.com/gogama/reqbuild/byterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilder(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		baseURL string
	}{
		{
			name:    "typical GET",
			method:  "GET",
			baseURL: "https://example.com/obj",
		},
		{
			name:    "method stored verbatim without normalization",
			method:  "get",
			baseURL: "https://example.com",
		},
		{
			name:    "empty method stored verbatim",
			method:  "",
			baseURL: "https://example.com",
		},
		{
			name:    "base URL not parsed or re-encoded",
			method:  "PUT",
			baseURL: "not a url at all",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			req := NewBuilder(testCase.method, testCase.baseURL).BuildRequest()
			assert.Equal(t, testCase.method, req.Method())
			assert.Equal(t, testCase.baseURL, req.URL())
			assert.Empty(t, req.Headers())
			assert.Equal(t, "", req.UserAgent())
			assert.False(t, req.AcceptEncoding())
		})
	}
}

func TestChaining(t *testing.T) {
	b := NewBuilder("GET", "https://example.com")
	assert.Same(t, b, b.AddUserAgentPrefix("foo/1.0 "))
	assert.Same(t, b, b.AddHeader("Accept: application/json"))
	assert.Same(t, b, b.AddQueryParameter("k", "v"))
	assert.Same(t, b, b.AddRangeHeader(byterange.Suffix(0)))
	assert.Same(t, b, b.EnableAcceptEncoding())
}

func TestAddQueryParameter(t *testing.T) {
	testCases := []struct {
		name     string
		params   [][2]string
		expected string
	}{
		{
			name:     "single parameter",
			params:   [][2]string{{"k", "v"}},
			expected: "https://example.com/obj?k=v",
		},
		{
			name:     "parameters joined in call order",
			params:   [][2]string{{"b", "2"}, {"a", "1"}, {"c", "3"}},
			expected: "https://example.com/obj?b=2&a=1&c=3",
		},
		{
			name:     "repeated keys kept",
			params:   [][2]string{{"k", "1"}, {"k", "2"}},
			expected: "https://example.com/obj?k=1&k=2",
		},
		{
			name:     "reserved characters escaped in key and value",
			params:   [][2]string{{"a&b", "c=d"}, {"e?f", "g/h"}},
			expected: "https://example.com/obj?a%26b=c%3Dd&e%3Ff=g%2Fh",
		},
		{
			name:     "empty key and value",
			params:   [][2]string{{"", ""}},
			expected: "https://example.com/obj?=",
		},
		{
			name:     "non-ASCII value",
			params:   [][2]string{{"name", "café"}},
			expected: "https://example.com/obj?name=caf%C3%A9",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := NewBuilder("GET", "https://example.com/obj")
			for _, kv := range testCase.params {
				b.AddQueryParameter(kv[0], kv[1])
			}
			url := b.BuildRequest().URL()
			assert.Equal(t, testCase.expected, url)
			assert.Equal(t, 1, strings.Count(url, "?"))
			assert.Equal(t, len(testCase.params)-1, strings.Count(url, "&"))
		})
	}
}

func TestAddUserAgentPrefix(t *testing.T) {
	t.Run("prefixes stack in reverse call order", func(t *testing.T) {
		req := NewBuilder("GET", "https://example.com").
			AddUserAgentPrefix("A").
			AddUserAgentPrefix("B").
			BuildRequest()
		assert.Equal(t, "BA", req.UserAgent())
	})
	t.Run("no prefix means empty user agent", func(t *testing.T) {
		req := NewBuilder("GET", "https://example.com").BuildRequest()
		assert.Equal(t, "", req.UserAgent())
	})
	t.Run("typical product tokens", func(t *testing.T) {
		req := NewBuilder("GET", "https://example.com").
			AddUserAgentPrefix("fetcher/0.9 ").
			AddUserAgentPrefix("cli/2.1 ").
			BuildRequest()
		assert.Equal(t, "cli/2.1 fetcher/0.9 ", req.UserAgent())
	})
}

func TestAddHeader(t *testing.T) {
	req := NewBuilder("GET", "https://example.com").
		AddHeader("Accept: application/json").
		AddHeader("x-custom:   spaced value  ").
		AddHeader("Accept: text/plain").
		AddHeader("not even a header").
		BuildRequest()
	assert.Equal(t, []string{
		"Accept: application/json",
		"x-custom:   spaced value  ",
		"Accept: text/plain",
		"not even a header",
	}, req.Headers())
}

func TestAddRangeHeader(t *testing.T) {
	req := NewBuilder("GET", "https://example.com/obj").
		AddRangeHeader(byterange.Closed(0, 100)).
		BuildRequest()
	assert.Equal(t, []string{"Range: bytes=0-99"}, req.Headers())
}

func TestEnableAcceptEncoding(t *testing.T) {
	b := NewBuilder("GET", "https://example.com")
	req := b.EnableAcceptEncoding().BuildRequest()
	assert.True(t, req.AcceptEncoding())
}

func TestBuildRequestConsumesBuilder(t *testing.T) {
	testCases := []struct {
		name string
		use  func(b *Builder)
	}{
		{
			name: "AddUserAgentPrefix",
			use:  func(b *Builder) { b.AddUserAgentPrefix("x") },
		},
		{
			name: "AddHeader",
			use:  func(b *Builder) { b.AddHeader("X: y") },
		},
		{
			name: "AddRangeHeader",
			use:  func(b *Builder) { b.AddRangeHeader(byterange.Suffix(0)) },
		},
		{
			name: "AddQueryParameter",
			use:  func(b *Builder) { b.AddQueryParameter("k", "v") },
		},
		{
			name: "EnableAcceptEncoding",
			use:  func(b *Builder) { b.EnableAcceptEncoding() },
		},
		{
			name: "BuildRequest",
			use:  func(b *Builder) { b.BuildRequest() },
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := NewBuilder("GET", "https://example.com")
			b.BuildRequest()
			assert.PanicsWithValue(t, usedMsg, func() { testCase.use(b) })
		})
	}
}

func TestBuildRequestTransfersOwnership(t *testing.T) {
	b := NewBuilder("GET", "https://example.com").
		AddHeader("A: 1").
		AddUserAgentPrefix("ua ")
	req := b.BuildRequest()
	require.Equal(t, []string{"A: 1"}, req.Headers())
	assert.Nil(t, b.headers)
	assert.Equal(t, "", b.userAgent)
	assert.Equal(t, 0, b.url.Len())
}

func TestEndToEnd(t *testing.T) {
	req := NewBuilder("GET", "https://example.com/obj").
		AddQueryParameter("a", "1 2").
		AddQueryParameter("b", "x&y").
		BuildRequest()
	assert.Equal(t, "https://example.com/obj?a=1%202&b=x%26y", req.URL())
}
