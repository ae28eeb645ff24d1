// Package lib groups integrations that do not belong to a single layer.
//
// It contains background job processing (using Redis/Asynq) and the
// Resend email client behind the visitor arrival notification.
package lib
