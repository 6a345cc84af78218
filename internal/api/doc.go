// Package api provides the HTTP handlers for the REST API: authentication
// and ownership-scoped task CRUD with paginated listing.
package api
