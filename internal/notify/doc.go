// Package notify reports each completed flashcard request to an operator.
//
// Delivery is best effort: the EmailNotifier retries transient SMTP failures
// a bounded number of times, and the event handler that drives it logs and
// drops any remaining error so a broken mailbox never fails a request.
package notify
