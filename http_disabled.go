//go:build !http_enabled

package main

import (
	"github.com/google/uuid"
)

// Stats uploading compiles away unless the build carries the http_enabled
// tag. Local builds and CI shouldn't pollute the stats table just because
// somebody ran the scene.

func UploadSessionStatsHttp(visitor string, releaseVersion int64,
	id uuid.UUID, stats SessionStats) {
}
