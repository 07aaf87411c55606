package main

import "github.com/vscentrum/accountpagectl/cmd"

func main() {
	cmd.Execute()
}
