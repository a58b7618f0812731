// package types defines structs for unmarshaling the output from various `docker compose` commands.
package types

// ComposeContainer is one entry of `docker compose ps --format json` output.
type ComposeContainer struct {
	ID         string      `json:"ID"`
	Name       string      `json:"Name"`
	Image      string      `json:"Image"`
	Service    string      `json:"Service"`
	State      string      `json:"State"`
	Health     string      `json:"Health"`
	ExitCode   int         `json:"ExitCode"`
	Publishers []Publisher `json:"Publishers"`
}

type Publisher struct {
	URL           string `json:"URL"`
	TargetPort    int    `json:"TargetPort"`
	PublishedPort int    `json:"PublishedPort"`
	Protocol      string `json:"Protocol"`
}

// Running reports whether the container is in a running state.
func (c ComposeContainer) Running() bool {
	return c.State == "running"
}
