// Package environment names the deployment environment a process runs in.
//
// The typed string Environment has three predefined values: Development,
// Staging and Production. Parse accepts the common short aliases ("dev",
// "stage", "prod") and falls back to Development for anything it does not
// recognise.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("NOTIFY_ENV"))
//	log := logger.New(logger.WithEnvironment(env.String(), "notifyd"))
package environment
