// Command disasterprep preprocesses raw disaster event records for modelling.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
