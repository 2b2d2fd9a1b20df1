// Package ports defines the interfaces that connect the application's layers.
//
// Inbound adapters (HTTP handlers, the TUI) depend on service and client
// ports; outbound adapters (the SQLite store, the REST client) implement
// them. The application layer sits in between and depends only on ports,
// never on concrete adapters.
package ports
