package client

// Client is the lifecycle contract the entrypoint programs against.
type Client interface {
	// Run restores the persisted session, starts the background workers
	// and the UI, and blocks until the user quits.
	Run() error
}
