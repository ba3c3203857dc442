package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gabriel-vasile/mimetype"
)

// CloudinaryUploader uploads through the Cloudinary upload API.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader for the given account credentials.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload sends file to Cloudinary. Only data URIs, bare base64 images and
// http(s) URLs are forwarded. The SDK reads any other string as a local path.
func (u *CloudinaryUploader) Upload(ctx context.Context, file, folder string) (Result, error) {
	source, err := cloudinarySource(file)
	if err != nil {
		return Result{}, err
	}

	resp, err := u.cld.Upload.Upload(ctx, source, uploader.UploadParams{Folder: folder})
	if err != nil {
		return Result{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return Result{}, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return Result{SecureURL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// cloudinarySource returns the value handed to the upload API. Bare base64 is
// wrapped in a data URI carrying the sniffed image type.
func cloudinarySource(file string) (string, error) {
	file = strings.TrimSpace(file)
	lower := strings.ToLower(file)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return file, nil
	case strings.HasPrefix(lower, "data:"):
		if _, err := DecodeDataURI(file); err != nil {
			return "", err
		}
		return file, nil
	}

	data, err := DecodeDataURI(file)
	if err != nil {
		return "", err
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ErrUnsupportedSource
	}
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
