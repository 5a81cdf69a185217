// Package services implements the driving port interfaces.
// Services contain the core search logic and read documents through
// driven ports (adapters).
//
// Services are pure Go with no internal concurrency. The suggestion
// cache in particular is unsynchronized: callers sharing one service
// across goroutines must serialize calls or give each session its own
// instance.
package services
