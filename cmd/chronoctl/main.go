package main

import (
	"github.com/michaelquigley/pfxlog"
	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/cmd/chronoctl/subcmd"
)

func main() {
	pfxlog.GlobalInit(logrus.InfoLevel, pfxlog.DefaultOptions().SetTrimPrefix("github.com/tigerater/"))
	subcmd.Execute()
}
