// Package api provides the HTTP handlers for the taskboard API: account
// registration, token issuance, and the caller-scoped task resource.
package api
