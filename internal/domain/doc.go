// Package domain defines the core business entities of the taskboard
// application and their validation rules.
package domain
