// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes optional Fn fields for per-test
// behavior and simple default fields for the common cases.
package mocks
