// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AvailabilityException is the predicate function for availabilityexception builders.
type AvailabilityException func(*sql.Selector)

// DayAvailability is the predicate function for dayavailability builders.
type DayAvailability func(*sql.Selector)

// MentorService is the predicate function for mentorservice builders.
type MentorService func(*sql.Selector)

// SessionRequest is the predicate function for sessionrequest builders.
type SessionRequest func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
