package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	dataURIPrefix       = "data:"
	dataURIBase64Marker = ";base64"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ParseImageDataURI decodes a `data:image/<type>;base64,<payload>` string and
// returns its content type and bytes.
func ParseImageDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return "", nil, errors.New("image is not a data URI")
	}

	header, payload, found := strings.Cut(uri[len(dataURIPrefix):], ",")
	if !found {
		return "", nil, errors.New("data URI has no payload")
	}
	if !strings.HasSuffix(header, dataURIBase64Marker) {
		return "", nil, errors.New("data URI is not base64 encoded")
	}

	contentType := strings.ToLower(strings.TrimSuffix(header, dataURIBase64Marker))
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", nil, fmt.Errorf("unsupported image type %q", contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	if len(data) == 0 {
		return "", nil, errors.New("data URI payload is empty")
	}

	return contentType, data, nil
}

// ImageExtension maps an allowed image content type to its file extension.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	return ext, ok
}

// ValidateImage checks an uploaded photo against the size limit and sniffs its
// content type from the first bytes. It returns the detected content type.
func ValidateImage(file multipart.File, fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) (string, error) {
	if fileHeader == nil {
		return "", errors.New("file is missing")
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return "", fmt.Errorf("file size exceeds the maximum limit of %dMB", maxSizeInMegabytes)
	}

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && n == 0 {
		return "", err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(head[:n])
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", fmt.Errorf("invalid file format %s", contentType)
	}
	return contentType, nil
}
