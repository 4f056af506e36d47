package model

// HostResponse is returned by GET /host.
type HostResponse struct {
	Host        string `json:"host"`
	Detected    bool   `json:"detected"`
	InContainer bool   `json:"in_container"`
	DockerHost  string `json:"docker_host,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
