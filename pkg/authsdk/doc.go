// Package authsdk is the Go client for the authkit HTTP API.
//
// The request and response types here are also what the server encodes, so
// a client built against this package always matches the wire format.
//
//	c := authsdk.NewClient("http://localhost:3001")
//	if _, err := c.Register(ctx, authsdk.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "password123"}); err != nil {
//		// *authsdk.APIError carries the status and the server's messages
//	}
//	login, err := c.Login(ctx, authsdk.LoginRequest{Email: "ann@x.com", Password: "password123"})
//	me, err := c.Profile(ctx, login.Token)
package authsdk
