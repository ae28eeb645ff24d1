// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// VisitorService is the visitor data access: it validates writes,
// issues one repository call per operation and maps the outcome onto
// the visitor status and error vocabulary
package service
