package main

import "github.com/isabella232/sdc-napi/cmds/napictl/cmd"

func main() {
	cmd.Execute()
}
