// Package commands defines the solid CLI.
//
// Commands
//
//   - list   Print the available principles
//   - run    Run one or more principle demos (`all` runs every demo in order)
//
// # Wiring
//
// The root command loads the optional YAML config, applies flag overrides and
// installs the logger before any subcommand runs. Demo text goes to stdout,
// logs go to stderr. The fax line (sync, Redis Streams or NATS JetStream) and
// the relationship store (memory or SQLite) are only built when the selected
// demos need them.
package commands
