// Package availability implements the availability and slot-booking engine:
// wall-clock times, recurring weekly windows, date-specific exception windows,
// concrete slots, conflict detection across midnight and week boundaries,
// timezone shifting between a user's IANA zone and the UTC storage zone,
// free-slot generation, and the booking decision function.
//
// Everything in this package is pure computation over value types. Loading
// candidate windows and session rows is the caller's job; all persisted
// values are assumed to be normalized to Etc/UTC.
package availability
