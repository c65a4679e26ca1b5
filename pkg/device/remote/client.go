package remote

import (
	"net/rpc"

	"graffiti/pkg/proto"
)

func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

// Client forwards documents to a render server.
type Client struct {
	rpc *rpc.Client
}

func (c *Client) Draw(doc []byte) error {
	return c.rpc.Call("Service.Draw", &DrawRequest{Document: doc}, &EmptyResponse{})
}

func (c *Client) Close() error {
	return c.rpc.Close()
}
