// Package contract holds the runtime configuration, validation and shared
// helpers used across the platefit CLI, core and storage layers.
package contract
