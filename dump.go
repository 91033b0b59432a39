package jsonmutator

import (
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump returns a Go-typed debug representation of the document's values,
// showing which Go type each value decoded to
func (d *Document) Dump() string {
	return dumpConfig.Sdump(d.ToMap())
}
