package main

import (
	"fmt"
	"os"

	"github.com/velalang/velac/internal/pipeline"
	"github.com/velalang/velac/internal/repl"
)

func runExplore(seed, root, uintWidth, sintWidth string) {
	var result *pipeline.Result
	if seed != "" {
		cfg := pipeline.Config{
			Root:      resolveRoot(root, seed),
			Seeds:     []string{seed},
			UintWidth: widthKind(uintWidth),
			SintWidth: widthKind(sintWidth),
		}
		r, err := pipeline.Compile(cfg)
		if err != nil {
			reportError(err, "text")
			os.Exit(1)
		}
		result = r
	}
	if result == nil {
		fmt.Fprintln(os.Stdout, yellow("no seed file given — rerun as `velac explore <file>` to browse a compiled module pool"))
	}
	repl.New(Version, result).Start(os.Stdout)
}
