package handler

import (
	"holdings/internal/property/models"
)

// UploadPropertyResponse is returned by POST /properties.
type UploadPropertyResponse struct {
	ID          string `json:"id"`
	ImageDigest string `json:"image_digest"`
}

// ListPropertiesResponse is returned by GET /properties.
type ListPropertiesResponse struct {
	Properties []models.Summary `json:"properties"`
}

// DeletePropertyResponse is returned by DELETE /properties/{id}.
type DeletePropertyResponse struct {
	Deleted bool `json:"deleted"`
}
