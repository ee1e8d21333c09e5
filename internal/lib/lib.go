// Package lib groups integrations that do not fit strictly into other
// layers: background job processing (Redis/Asynq) in lib/job and email
// delivery (Resend) in lib/email.
package lib
