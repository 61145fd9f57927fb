package model

// Wire block type numbers the schema codec reads and writes.
const (
	wireComponentValue  = 0x01
	wirePatternTag      = 0x02
	wireNodeID          = 0x03
	wireUserFnID        = 0x04
	wireIdentifier      = 0x05
	wireUserFnCall      = 0x11
	wireFnArgs          = 0x12
	wireConsOption      = 0x21
	wireConstraint      = 0x22
	wireValueEdge       = 0x31
	wirePatternEdge     = 0x32
	wireKeyNodeID       = 0x33
	wireParentID        = 0x34
	wireVersion         = 0x40
	wireNode            = 0x41
	wireTagSymbol       = 0x42
	wireNamedPatternNum = 0x43
)
