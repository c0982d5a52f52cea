package data

// Types names the runtime type of an evaluation result as a string.
type Types string

// The value types a response can report, limited for our use.
const (
	BOOL   Types = "bool"
	ERROR  Types = "error"
	INT    Types = "int"
	MAP    Types = "map"
	STRING Types = "string"
	NONE   Types = "none"
	FLOAT  Types = "float"
)
