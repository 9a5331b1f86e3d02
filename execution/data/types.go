package data

// Types of an object as a string.
type Types string

// The valid types as constants, limited to what formula evaluation
// produces.
const (
	ERROR Types = "error"
	NONE  Types = "none"
	FLOAT Types = "float"
)
