// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuotaCounter is the predicate function for quotacounter builders.
type QuotaCounter func(*sql.Selector)

// Response is the predicate function for response builders.
type Response func(*sql.Selector)

// ReviewInterval is the predicate function for reviewinterval builders.
type ReviewInterval func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionQuestion is the predicate function for sessionquestion builders.
type SessionQuestion func(*sql.Selector)

// ThetaSnapshot is the predicate function for thetasnapshot builders.
type ThetaSnapshot func(*sql.Selector)

// TierConfig is the predicate function for tierconfig builders.
type TierConfig func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
