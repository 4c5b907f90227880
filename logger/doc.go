// Package logger is the public API of runlog. Most users only need to
// import this package.
//
// A Logger is a named handle created once per component and passed
// explicitly to the code that logs through it:
//
//	log, err := logger.Create("Demo", "")
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//	log.Info("hello")
//
// writes to stderr and to ./log/Run_<dd-MM-yyyy_HHmmss>.log:
//
//	[18-02-2026 13:04:05][INFO - Demo:12] hello
//
// The number after the name is the line of the call to Info, captured
// with runtime.Caller. Pass NoFile as the destination to log to the
// console only, or a directory path to place the run file elsewhere.
//
// InfoFrom, WarningFrom and ErrorFrom print another component's name in
// place of the handle's, so a single handle can serve helpers that do
// not own one. LogStackTrace writes an error with the stack frames that
// mention the handle's name; annotate errors with WithStack where they
// are created to report that stack instead of the logging site.
//
// For more control use the Builder:
//
//	log, err := logger.NewBuilder().
//	    WithName("Server").
//	    WithDirectory("/var/log/server").
//	    WithLevel(logger.WarningLevel).
//	    WithColor(true).
//	    Build()
//
// Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison.
package logger
