// Package cmd implements the command-line interface of dgs-literal. It provides
// commands to serialize values into GraphQL input literals and to build operation
// documents from request descriptions.
//
// The package is organized into several subpackages:
//
//   - serialize: Command printing the literal of a YAML or JSON document
//   - query: Command printing an operation document (type, name, arguments, fields)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See dgs-literal -help for a list of all commands.
package cmd
