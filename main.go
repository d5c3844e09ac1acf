package main

import (
	cmd "github.com/readerhub/libchat/cmd/libchat"
	"github.com/readerhub/libchat/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting libchat")
	cmd.Execute()
}
