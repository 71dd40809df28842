// Package core provides the severity scale, the log event and the sink
// contract shared by docbase and its sinks.
package core
