// Package validation contains the logic for validating
// visitor writes and request data.
//
// Visitor fields are checked in a fixed order and the first
// failure is reported with its catalog message. Request payloads
// use the `validator` library with struct tags, and failures are
// extracted into a format the client can understand
package validation
