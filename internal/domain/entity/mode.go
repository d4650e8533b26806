package entity

// ScanMode is the single global scanning mode. Only one navigator is live at
// a time.
type ScanMode int

const (
	ModeItemScan ScanMode = iota
	ModePointScan
)

func (m ScanMode) String() string {
	if m == ModePointScan {
		return "point_scan"
	}
	return "item_scan"
}
