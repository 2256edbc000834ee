// Package types defines the journal entity types, configuration, sentinel
// errors, and the checksum helper shared by the Lantern storage layers.
package types
