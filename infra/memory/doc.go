// Package memory provides allocation helpers for hot paths.
package memory
