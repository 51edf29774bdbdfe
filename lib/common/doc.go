// Package common provides the configuration structure and the logging setup shared by
// the command line tool and the libraries.
//
// Key Components:
//
//   - Config: Settings of the command line tool (serializer options, output format, logging)
//     with validation and a readable String representation.
//
//   - Logger: Custom logging implementation for Dragonboat's logger facade. All packages obtain
//     their logger with logger.GetLogger(name); InitLoggers installs the formatting and levels.
package common
