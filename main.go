package main

import "github.com/frahmantamala/hr-directory/cmd"

func main() {
	cmd.Execute()
}
