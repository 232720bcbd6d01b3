// Package models defines the JSON records the InstaGuard client exchanges
// with the backend. Field tags follow the backend's wire names, which mix
// camelCase and snake_case.
package models
