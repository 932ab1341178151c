package config

var (
	// AdoptCheck enables the process-wide adopted-pointer registry that
	// turns duplicate adoption into a fatal assertion. Off in production
	// builds; the handledebug build tag turns it on.
	AdoptCheck = false

	// RecoverFinalizerPanic converts a panic escaping a finalizer into a
	// logged error. Finalization is one-shot and never retried.
	RecoverFinalizerPanic = true
)
