// Package remote provides an HTTP implementation of the domain.ImageFetcher
// interface, used when a wallpaper argument is an http(s) URL.
//
// Requests accept a context for cancellation and deadlines. Non-2xx statuses
// are returned as errors with the HTTP method, full URL, and status text to
// aid diagnostics. Bodies larger than MaxBytes are rejected rather than
// truncated.
package remote
