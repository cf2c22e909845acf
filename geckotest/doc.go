// Package geckotest provides an in-process fake of the CoinGecko v3 API
// for tests, in the spirit of net/http/httptest.
//
// A Server answers every route the gecko facade calls with a canned
// fixture, records the requests it receives, and can be configured to
// demand an API key or to start rate limiting after a number of calls.
// Failures use the same JSON error envelope as the live API:
//
//	{"status":{"error_code":429,"error_message":"You've exceeded the Rate Limit."}}
package geckotest
