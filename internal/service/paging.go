package service

// Fixed page sizes per listing type. Callers select a page number only.
const (
	DevicePageSize      = 25
	MeasurementPageSize = 50
	AlertPageSize       = 50
)

// Caps for the device-detail sublists.
const (
	detailMeasurementCap = 50
	detailAlertCap       = 20
)

// clampPage degrades any page number to a valid one: sub-1 (including the
// parse default for garbage input) becomes 1, past-the-end clamps to the last
// non-empty page. Returns the effective page and row offset.
func clampPage(page, total, size int) (int, int) {
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, (page - 1) * size
}
