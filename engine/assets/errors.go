package assets

import "fmt"

// NotIndexedError reports a load request for a path the watcher never saw.
type NotIndexedError struct {
	Path string
}

func (e *NotIndexedError) Error() string {
	return fmt.Sprintf("asset not indexed: %s", e.Path)
}

// NoLoaderError reports a load request for an asset type without a
// registered loader.
type NoLoaderError struct {
	Path string
	Type ResourceType
}

func (e *NoLoaderError) Error() string {
	return fmt.Sprintf("no loader registered for %s asset %s", e.Type, e.Path)
}
