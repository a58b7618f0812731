package devup

import "os"

// FileOps abstracts the filesystem probes the launcher performs while
// resolving configuration, so tests can supply fixtures.
type FileOps interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	Getwd() (string, error)
}

type defaultFileOps struct{}

func NewDefaultFileOps() FileOps {
	return &defaultFileOps{}
}

func (f *defaultFileOps) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (f *defaultFileOps) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *defaultFileOps) Getwd() (string, error) {
	return os.Getwd()
}
