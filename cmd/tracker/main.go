// Command tracker records and edits tracks in a local database without the
// HTTP server.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("tracker")
	}
}
