package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/bradfeldman/exit-osx-sub006/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
