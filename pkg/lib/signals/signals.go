package signals

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

	ctx  context.Context
	once sync.Once
)

// Context returns a Context that is cancelled on the first SIGINT or
// SIGTERM, with the signal as its cause. Searches in progress give up
// at their next iteration. A second signal terminates the process
// with exit code 1.
func Context() context.Context {
	once.Do(func() {
		c := make(chan os.Signal, 2)
		signal.Notify(c, shutdownSignals...)

		var cancel context.CancelCauseFunc
		ctx, cancel = context.WithCancelCause(context.Background())
		go func() {
			sig := <-c
			cancel(fmt.Errorf("received %s", sig))
			<-c
			os.Exit(1) // second signal. Exit directly.
		}()
	})

	return ctx
}
