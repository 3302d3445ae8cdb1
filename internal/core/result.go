package core

// GenerationResult holds the most recent successful generation. It is
// replaced wholesale on each success and cleared on session creation.
type GenerationResult struct {
	Filename      string
	Code          string
	Dependencies  []string
	ExecutionTime float64 // seconds
}

// ResultHolder keeps at most one GenerationResult, independent of history.
type ResultHolder struct {
	res *GenerationResult
}

func (h *ResultHolder) Show(res GenerationResult) {
	h.res = &res
}

func (h *ResultHolder) Clear() {
	h.res = nil
}

// Current returns the latest result, if any.
func (h *ResultHolder) Current() (GenerationResult, bool) {
	if h.res == nil {
		return GenerationResult{}, false
	}
	return *h.res, true
}
