// Package main provides the invlogit CLI for evaluating the stable logistic
// transform and its derivatives from the command line.
package main

import (
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("invlogit: ")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
