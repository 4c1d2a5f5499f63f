package catalog

// Window is the skip/limit pair selecting one page of the sorted result set.
type Window struct {
	Skip  int64
	Limit int64
}

// Window computes the pagination window. Page and Limit are already ≥ 1, so
// Skip is never negative.
func (p ListParams) Window() Window {
	return Window{
		Skip:  int64(p.Limit) * int64(p.Page-1),
		Limit: int64(p.Limit),
	}
}

// Pages is ceil(total/limit); zero when the filter matched nothing.
func Pages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
