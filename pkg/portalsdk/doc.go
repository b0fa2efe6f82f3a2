// Package portalsdk is the Go client for the Clarity Impact Finance portal
// API, and the home of its request and response types.
//
// The portal identifies a browser by a signed session cookie, so a Client
// keeps a cookie jar: every call made through one Client belongs to the same
// browser session.
//
//	c := portalsdk.NewClient("http://localhost:8080")
//
//	ok, err := c.ValidateInvitationCode(ctx, "CIF-7KQ2ZD")
//	_, err = c.Register(ctx, portalsdk.RegisterRequest{...})
//	sess, err := c.Login(ctx, "alice", "s3cret")
//
//	conv, err := c.CreateConversation(ctx)
//	conv, err = c.SendMessage(ctx, conv.ID, "What services do you provide?")
//
// Admin endpoints need AdminLogin first; the admin cookie lands in the same
// jar.
package portalsdk
