// Package service implements the application's business operations on top of
// the store interfaces. Caller identity is an explicit parameter on every
// task operation; services never read it from ambient state.
package service
