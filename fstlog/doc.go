// Package fstlog is the leveled diagnostic logger shared by the weight
// verifier and the command line tools.
//
// A Logger tags records INFO, WARNING, ERROR or FATAL and gates optional
// detail behind a verbosity threshold:
//
//	log := fstlog.New(fstlog.WithVerbosity(1))
//	if log.V(1) {
//		log.Info("drawing samples", zap.Int("n", n))
//	}
//	log.VInfo(2, "only at -v 2 and above")
//
// FATAL records terminate the process through an exit hook (os.Exit by
// default, replaceable with WithExit). Check is the assertion primitive: a
// false condition logs
//
//	Check failed: "<expr>" file: <file> line: <line>
//
// at FATAL.
//
// The threshold belongs to the Logger value; there is no process-wide
// verbosity. Records go through go.uber.org/zap, so any zapcore.Core
// (including zaptest/observer) can receive them via WithZap.
package fstlog
