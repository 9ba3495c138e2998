// Package commands defines the rhythmui-demo CLI.
//
// Commands
//
//   - keyarea   A mania stage; the configured keys light up their columns
//   - logo      A logo that travels between two placeholders on Space
//   - profile   A profile header that cycles sample users on Space
//   - config    Write the effective configuration to a file
//
// # Implementation
//
// The root command loads the configuration and installs the logger before
// any subcommand runs. Every demo builds a Scene and hands it to run, which
// attaches the --script test runner when one is given.
package commands
