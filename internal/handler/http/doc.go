// Package http implements the loopback HTTP transport used to hand print
// documents to the system browser.
//
// Every request is tagged with a trace ID and access-logged before it reaches
// a handler; panics are recovered by chi's Recoverer.
package http
