package main

import (
	"flag"

	"github.com/plan-systems/klog"

	"github.com/notargets/meshtri/cmd"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	cmd.Execute(fset)

	klog.Flush()
}
