// Package cli turns command-line arguments into a Config for the gridcalc
// command and builds its logger.
package cli
