package remote

type EmptyResponse struct {
}

type DrawRequest struct {
	Document []byte
}
