package parser

import (
	"github.com/cottand/dlnf/dlerr"
)

func syntaxErr(input, reason string) dlerr.DLError {
	return dlerr.New(dlerr.NewSyntax{Input: input, Reason: reason})
}
