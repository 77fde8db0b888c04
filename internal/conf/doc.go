// Package conf builds the routing table of the logging daemon from its
// declarative text configuration.
//
// The configuration is grouped key/value text: OUTPUT groups define named
// rotating log files, CONTEXT groups define named, ordered lists of routing
// rules. Loading is a small compilation pipeline:
//
//  1. Primitive parsers turn raw strings into typed values (integers, sizes
//     with K/M suffixes, syslog facility and severity names).
//  2. The rule compiler turns one filter expression
//     facility['.' ['!'] level ['.' program]] ',' ['-'] output
//     into a Rule, resolving the output reference against the outputs
//     defined so far.
//  3. The loader walks every group, populates the output and context
//     registries, and enforces the structural invariants: the first output
//     must be "stdlog", the first context must be "<global>".
//
// A load either produces a complete, validated Table or fails as a whole.
// Tables are immutable once built; Holder publishes the live table with an
// atomic pointer swap so a reload never exposes a half-built table to
// concurrent readers. When a load fails, callers fall back to Defaults().
//
// Out-of-range sizes and rotation counts never fail a load: they are logged
// and clamped in place.
package conf
