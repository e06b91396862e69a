package main

import "github.com/jsphweid/melodeon/cmd"

func main() {
	cmd.Execute()
}
