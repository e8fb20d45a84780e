// Package email provides a provider-agnostic interface for sending transactional emails.
//
// Two implementations of EmailSender are available:
//   - the Postmark client, for real delivery
//   - LogSender, for development, which only logs the envelope
//
// Both validate SendEmailParams before doing anything else.
//
// # Usage
//
//	sender, err := email.NewPostmarkClient(email.Config{
//	    PostmarkServerToken: "server-token",
//	    SenderEmail:         "noreply@example.com",
//	    SupportEmail:        "support@example.com",
//	})
//	if err != nil {
//	    return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "sales@example.com",
//	    Subject:  "New lead",
//	    BodyHTML: html,
//	    Tag:      "lead-notification",
//	})
//
// # Error Handling
//
// Sentinel errors can be checked with errors.Is:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: email parameters validation failed
//   - ErrFailedToSendEmail: delivery failed
package email
