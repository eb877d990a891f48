// Package storage keeps uploaded post images on disk or in S3.
package storage

import (
	"io"
	"net/http"

	"yatube/config"
)

type API interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var instance API

func Init() {
	if config.S3_BUCKET != "" {
		instance = NewS3Storage(config.S3_BUCKET, config.S3_REGION, config.S3_PREFIX)
		return
	}
	instance = NewDiskStorage(config.MEDIA_DIR)
}

func Get() API {
	return instance
}
