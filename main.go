package main

import (
	"fmt"
	"os"

	"gestfin/pgc-engine/cmd/classify"
	"gestfin/pgc-engine/cmd/learn"
	"gestfin/pgc-engine/cmd/mapitems"
	"gestfin/pgc-engine/cmd/report"
	"gestfin/pgc-engine/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(learn.Cmd)
	root.Cmd.AddCommand(mapitems.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
