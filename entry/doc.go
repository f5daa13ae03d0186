// Package entry implements the entry-point logic for a typical HTTP or gRPC
// server application, including opinionated defaults for things like logging
// and tracing, plus an interceptor that requires a valid HMAC-SHA256
// signature on every inbound gRPC request.
//
// Example usage:
//
//	func main() {
//		app := entry.NewApplication("test")
//		defer app.Stop()
//		ctx := app.Context()
//
//		app.Log().Info("Doing some setup")
//		if err := doSomeSetup(); err != nil {
//			app.Fail("Setup failed", err)
//		}
//
//		h := &somethingThatImplementsHttpHandler{}
//
//		entry.RunServer(app, h, "", 5000)
//	}
package entry
