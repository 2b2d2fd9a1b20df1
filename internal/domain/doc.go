// Package domain holds the core entities and sentinel errors shared by the
// server and client sides of the application. It has no dependencies on
// adapters or platform packages.
package domain
