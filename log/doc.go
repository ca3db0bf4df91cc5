// Package log provides the leveled logging layer used by the routing
// components.
//
// The package exposes a small Logger interface, a stdlib-backed
// DefaultLogger, a NoOpLogger for silencing output, and an adapter for
// kataras/golog when colorized leveled output is wanted.
//
// Components read the package-level default logger unless one is injected
// explicitly:
//
//	log.SetLogLevel(log.LogLevelDebug)
//
//	// or route everything through golog
//	log.SetDefaultLogger(log.NewGologLogger(golog.Default))
//
// The default logger writes to stderr with the "[ragroute]" prefix at Info
// level.
package log
