package cli

import (
	"embed"
	"io/fs"
)

//go:embed topics
var topicFiles embed.FS

func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic("cli: embedded topics missing: " + err.Error())
	}
	return sub
}
