// Package app bundles the constructed engines into a single context the CLI
// commands share.
package app
