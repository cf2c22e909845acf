// Package throttle provides an opt-in [http.RoundTripper] that spaces
// outbound API calls using a token-bucket algorithm from
// [golang.org/x/time/rate]. It is only installed when a caller asks for
// it through client.WithThrottle; the request pipeline itself never
// paces or retries.
//
// # Usage
//
//	rt, err := throttle.NewRoundTripper(
//		throttle.Config{RPS: 10, Burst: 5},
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When the bucket is empty, outbound requests block until a token becomes
// available or the request context is cancelled.
package throttle
