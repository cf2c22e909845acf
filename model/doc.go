// Package model declares the response shapes of the CoinGecko v3 API.
//
// Fields the API always sends carry a `validate:"required"` tag and are
// checked after decoding; nested objects the API may omit or send as null
// are pointers. Fields whose JSON kind varies between responses use
// [Value] and are narrowed by the caller.
package model
