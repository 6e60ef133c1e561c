package response

// DispatchResult records the outcome of one attempted email send.
type DispatchResult struct {
	To     string `json:"to"`
	Status int    `json:"status"`
}

type NotifyResponse struct {
	Success bool             `json:"success"`
	Results []DispatchResult `json:"results"`
}

func Notified(results []DispatchResult) *NotifyResponse {
	if results == nil {
		results = []DispatchResult{}
	}
	return &NotifyResponse{
		Success: true,
		Results: results,
	}
}

// Delivered reports whether every send was accepted with a 2xx status.
func Delivered(results []DispatchResult) bool {
	for _, r := range results {
		if r.Status < 200 || r.Status > 299 {
			return false
		}
	}
	return true
}
