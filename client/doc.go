// Package client provides the request/response pipeline behind the gecko
// API client: query encoding, endpoint composition, HTTP execution with
// status classification, and schema-aware JSON decoding.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithBaseURL("https://api.coingecko.com/api/v3"),
//		client.WithHeader("x-cg-demo-api-key", key),
//		client.WithTimeout(10 * time.Second),
//	)
//
// The returned Client is immutable and safe for concurrent use.
//
// # Making Requests
//
// Anything that implements [Query] can be dispatched with [Fetch], which
// names the target type the response body is decoded into:
//
//	type pingQuery struct{}
//
//	func (pingQuery) Endpoint() string      { return "/ping" }
//	func (pingQuery) Params() client.Params { return client.Params{} }
//
//	pong, err := client.Fetch[map[string]string](ctx, c, pingQuery{})
//
// # Errors
//
// Fetch fails with exactly one of three error types:
//
//   - [*TransportError] when the request never produced a response.
//   - [*HTTPStatusError] when the server answered outside the 2xx range.
//     The body is kept as a snippet and never decoded.
//   - [*DecodeError] when the body does not match the target type. It
//     carries the dotted field path of the first mismatch.
//
// Use [errors.As] to inspect them, or [errors.Is] with the package
// sentinels such as [ErrRateLimited].
package client
