//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string) string {
	// Create a buffer to write our multipart form data.
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		err := writer.WriteField(k, v)
		Check(err)
	}
	err := writer.Close()
	Check(err)

	// Create a POST request with the multipart form data.
	request, err := http.NewRequest("POST", url, &requestBody)
	Check(err)
	request.Header.Set("content-type", writer.FormDataContentType())

	// Perform the request.
	client := &http.Client{}
	response, err := client.Do(request)
	Check(err)
	if response.StatusCode != 200 {
		Check(fmt.Errorf("http request failed: %d", response.StatusCode))
	}
	data, err := io.ReadAll(response.Body)
	Check(err)
	return string(data)
}

// UploadSessionStatsHttp records one snapshot of the current viewing session
// in the stats database. The endpoint upserts by session id, so repeated
// snapshots from the same session overwrite each other and the table ends up
// holding the last known state of every session.
func UploadSessionStatsHttp(visitor string, releaseVersion int64,
	id uuid.UUID, stats SessionStats) {
	url := "https://stats.forgegate.dev/submit-scene-session.php"
	makeHttpRequest(url,
		map[string]string{
			"visitor":         visitor,
			"release_version": strconv.FormatInt(releaseVersion, 10),
			"id":              id.String(),
			"frames":          strconv.FormatInt(stats.Frames, 10),
			"seconds":         strconv.FormatFloat(stats.Seconds, 'f', 2, 64),
			"items_spawned":   strconv.FormatInt(stats.ItemsSpawned, 10),
		})
}
