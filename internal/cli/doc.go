// Package cli parses the command line of martinigen into a Config.
package cli
