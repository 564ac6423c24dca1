package cloudinary

import (
	"context"
	"os"

	sdk "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
	"github.com/pkg/errors"
)

const videoResourceType = "video"

var (
	ErrProviderUpload = errors.New("provider upload failed")
	ErrEmptyPublicID  = errors.New("empty public id")
)

// Credentials identify the Cloudinary account
type Credentials struct {
	CloudName string
	APIKey    string
	APISecret string
	// UploadPrefix overrides the upload API host, empty keeps the SDK default
	UploadPrefix string
}

// Asset is what the provider returns for an uploaded file
type Asset struct {
	PublicID  string
	SecureURL string
}

// Client wraps the Cloudinary SDK
type Client struct {
	cld *sdk.Cloudinary
}

// New creates a Client from explicit credentials
func New(creds Credentials) (*Client, error) {
	conf, err := config.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "invalid cloudinary credentials")
	}
	if creds.UploadPrefix != "" {
		conf.API.UploadPrefix = creds.UploadPrefix
	}
	conf.URL.Secure = true

	cld, err := sdk.NewFromConfiguration(*conf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloudinary client")
	}

	return &Client{cld: cld}, nil
}

// UploadVideo sends the file at localPath as a video resource
func (c *Client) UploadVideo(ctx context.Context, localPath string) (*Asset, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, errors.Wrapf(ErrProviderUpload, "open %s: %v", localPath, err)
	}
	defer file.Close()

	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		ResourceType: videoResourceType,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrProviderUpload, "%v", err)
	}
	if resp.Error.Message != "" {
		return nil, errors.Wrapf(ErrProviderUpload, "%s", resp.Error.Message)
	}
	if resp.PublicID == "" {
		return nil, errors.Wrap(ErrProviderUpload, "no public id in response")
	}

	return &Asset{
		PublicID:  resp.PublicID,
		SecureURL: resp.SecureURL,
	}, nil
}

// BuildTransformationURL formats the delivery URL of a transformed video.
// No request is made.
func (c *Client) BuildTransformationURL(publicID string, t Transformation) (string, error) {
	if publicID == "" {
		return "", ErrEmptyPublicID
	}

	video, err := c.cld.Video(publicID)
	if err != nil {
		return "", errors.Wrap(err, "failed to create video asset")
	}
	video.Transformation = t.String()

	url, err := video.String()
	if err != nil {
		return "", errors.Wrap(err, "failed to build transformation url")
	}
	return url, nil
}
