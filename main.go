package main

import "github.com/mentorly/mentorly_backend/cmd"

func main() {
	cmd.Execute()
}
