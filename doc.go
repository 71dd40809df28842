// Package docbase is the shared base every component of the documentation
// toolchain builds on. It provides severity-filtered logging to several
// destinations, named elapsed-time timers and lazily loaded configuration.
//
// # Facility
//
// A Facility owns the configuration and the log sinks. Nothing is read or
// opened until it is needed:
//
//	f := docbase.New(docbase.WithConfigPath("config/docbase.toml"))
//	defer f.Close()
//
//	f.Info("generating reference pages")   // opens log file and stdout
//	f.Debug(pageIndex)                      // opens the error/debug log
//
// Messages at INFO and above go to logging.default_file and to standard
// output. DEBUG messages only ever reach logging.error_file.
//
// # Severity
//
// Severities follow syslog: EMERGENCY (0) is the most severe and DEBUG (7) the
// least. A message passes when its severity is numerically at or below the
// threshold. The threshold comes from logging.level unless SetLogLevel is
// called first.
//
// # Timers
//
// Components embed a Base, which starts a default timer on creation:
//
//	b := docbase.NewBase(f)
//	parse()
//	b.DebugTimer("parsed sources", "")   // "parsed sources in 0.1234 seconds"
//
// # Process-wide access
//
// Default returns a facility shared by the whole process and the package
// level Log, Debug, Config, LogLevel and SetLogLevel functions use it.
package docbase
