// Package rowstore defines the storage capabilities the rowdex core
// consumes: row-by-position access, optional local materialization, and
// delegated mutation with a three-valued outcome.
package rowstore
