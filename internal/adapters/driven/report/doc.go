// Package report implements the console progress reporter. Import runs
// announce the resolved file count up front and then one line per file
// outcome; this adapter owns that operator-facing text so the core
// services stay free of presentation concerns.
package report
