package main

import (
	"os"

	"github.com/PolarWolf314/kubecm/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
