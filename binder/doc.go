// Package binder decodes HTTP request bodies into Go values.
//
// BindJSON reads at most a bounded number of bytes, requires a single JSON
// object and reports every decoding problem as ErrInvalidJSON so callers can
// map it to one client error.
package binder
