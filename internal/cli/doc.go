// Package cli parses leeroute's command-line arguments into a Config.
package cli
