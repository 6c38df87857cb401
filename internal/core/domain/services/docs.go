// Package services contains stateless domain services for the shop orders system.
//
// Domain services host behavior that does not naturally belong to a single
// aggregate. OrderNotificationComposer renders the admin and customer email
// notifications for a newly placed order; delivery of those messages is an
// infrastructure concern handled through the notification outbox.
package services
