// Package resources defines the core entities, queries and service contracts for
// managing generic resources, including creation, retrieval, update and deletion.
package resources
