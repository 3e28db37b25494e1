package http

type exploreReq struct {
	ClassName string `json:"class_name"`
	Isolated  bool   `json:"isolated"`
}

type focusReq struct {
	NodeID string `json:"node_id"`
}
