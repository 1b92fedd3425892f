// Package model defines the shared data types of the rowdex core.
package model
