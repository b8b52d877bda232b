// Package api implements the HTTP access layer of the portale client: a
// request executor with optional bearer-token injection, a response
// normalizer that folds the backend's heterogeneous reply shapes (success
// envelopes, validation-error envelopes, HTML error pages, transport
// failures) into one uniform Result, and the status-code classifier that
// guarantees every failing Result carries a user-facing message.
//
// Nothing in this package returns an error or panics across its public
// boundary: every call yields a Result, with Status 0 marking failures that
// never reached the server.
package api
