package main

import (
	"os"

	"github.com/sirupsen/logrus"

	_ "github.com/denysvitali/skoda-remote/cmd/configure"
	_ "github.com/denysvitali/skoda-remote/cmd/cooling"
	_ "github.com/denysvitali/skoda-remote/cmd/flash"
	_ "github.com/denysvitali/skoda-remote/cmd/honk"
	_ "github.com/denysvitali/skoda-remote/cmd/location"
	_ "github.com/denysvitali/skoda-remote/cmd/request"
	"github.com/denysvitali/skoda-remote/cmd/root"
	_ "github.com/denysvitali/skoda-remote/cmd/status"
	_ "github.com/denysvitali/skoda-remote/cmd/ventilator"
	_ "github.com/denysvitali/skoda-remote/cmd/version"
	_ "github.com/denysvitali/skoda-remote/cmd/watch"
)

func main() {
	if err := root.RootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
