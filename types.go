package users

import "fmt"

// ResourceType is the only resource this pipeline accepts.
const ResourceType = "users"

// Logger holds the logging methods the pipelines use
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Config holds pipeline options
type Config interface {
	GetSigningKey() string
	// GetTokenExpiration is the token lifetime in hours; 0 means the
	// default of 2 hours.
	GetTokenExpiration() int
	GetIssuer() string
	// GetBcryptCost returns the bcrypt work factor; values below 10 are
	// raised to 10.
	GetBcryptCost() int
}

// Result is the single terminal outcome of a pipeline call. Status carries
// the HTTP status the adapter should respond with, Body the JSON:API
// document to serialize.
type Result struct {
	Status int
	Body   any
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] USERS "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] USERS "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] USERS "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
