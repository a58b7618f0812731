package main

import (
	"fmt"

	"github.com/devup-cli/devup/version"
)

type VersionCmd struct{}

func (c *VersionCmd) Run(cctx *Context) error {
	versionInfo := version.Get()
	fmt.Printf("Git Commit: %s\n", versionInfo.GitCommit)
	fmt.Printf("Build Time: %s\n", versionInfo.BuildTime)
	if versionInfo.BuildInfo != nil {
		fmt.Printf("Go Version: %s\n", versionInfo.BuildInfo.GoVersion)
	}
	return nil
}
