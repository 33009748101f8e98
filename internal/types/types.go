package types

// EntityID is an opaque unit handle. IDs are handed out in increasing order
// and never reused within a world, so they double as a stable ordering.
type EntityID uint32
