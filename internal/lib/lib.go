// Package lib groups integrations that sit outside the request path:
// background jobs (asynq over Redis) and transactional e-mail (Resend).
package lib
