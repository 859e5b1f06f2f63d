// Package server holds the configuration for the preview HTTP server.
//
// The preview server is a read-only review surface over the exported table
// documents; this package only carries its listen settings so that the
// central config loader can bind them.
package server
