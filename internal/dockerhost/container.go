package dockerhost

import "os"

// DockerEnvPath is created by the Docker daemon in the root of every
// container filesystem it sets up.
const DockerEnvPath = "/.dockerenv"

// InContainer is evaluated once at startup. The marker is written when the
// container is created and never changes while the process runs.
var InContainer = IsInContainer()

// IsInContainer reports whether the current process runs inside a Docker
// container.
func IsInContainer() bool {
	return markerExists(DockerEnvPath)
}

func markerExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
