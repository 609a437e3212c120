// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the mode dispatch between compilation,
// extraction, and validation, decoupled from any specific entrypoint.
package app
