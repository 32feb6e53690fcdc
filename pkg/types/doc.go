// Package types defines the Item entity, view parameters (filters and sort
// order), configuration, the Store interface, and standard errors for the
// Stockroom inventory tool.
package types
