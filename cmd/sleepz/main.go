// Package main implements the sleepz CLI for inferring sleep patterns from
// browser-activity exports.
package main

func main() {
	Execute()
}
