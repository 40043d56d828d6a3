package jetton

import (
	"github.com/xssnick/tonutils-go/address"

	"github.com/wippyai/tvm-cells/cell"
)

func friendly(a *cell.Address) *address.Address {
	return address.NewAddress(0, byte(a.Workchain), a.Hash[:])
}
