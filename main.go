package main

import "github.com/davidcollom/dbcost/cmd"

func main() {
	cmd.Execute()
}
