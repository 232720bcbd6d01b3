// Package forms holds the checks the client runs before a request leaves
// the machine. Each function returns the first failing rule as an *Error
// carrying the text shown to the user.
package forms
