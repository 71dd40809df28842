package docbase

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders debug values. Pointer addresses and capacities are left out
// so the same value always produces the same text.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// render returns message as text. Strings, errors and fmt.Stringers supply
// their own text; anything else is dumped.
func render(message any) string {
	switch m := message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	}
	return strings.TrimSuffix(dumper.Sdump(message), "\n")
}
